package configs

import "github.com/Rakhulsr/go-catalog/app/storage"

func StorageConfig(env ENV) storage.Config {
	return storage.Config{
		Driver:    env.StorageDriver,
		Endpoint:  env.StorageEndpoint,
		AccessKey: env.StorageAccessKey,
		SecretKey: env.StorageSecretKey,
		Region:    env.StorageRegion,
		UseSSL:    env.StorageUseSSL,
		PublicURL: env.StoragePublicURL,
		LocalDir:  env.StorageLocalDir,
	}
}
