package config

type StorageConfig struct {
	BasePath    string
	URLPrefix   string
	MaxFileSize int64
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		BasePath:    getEnv("STORAGE_PATH", "./uploads"),
		URLPrefix:   getEnv("STORAGE_URL_PREFIX", "/uploads"),
		MaxFileSize: getEnvAsInt64("STORAGE_MAX_FILE_SIZE", 10*1024*1024),
	}
}
