package env

import "os"

// Fallback credentials for deployments that keep secrets out of the yaml
// config files.
var (
	RedisPassWord = os.Getenv("FRAGMENTED_SQUARES_REDIS_PASSWORD")
	MongoPassWord = os.Getenv("FRAGMENTED_SQUARES_MONGO_PASSWORD")
)
