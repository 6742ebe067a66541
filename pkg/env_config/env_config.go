package env_config

import (
	"os"
	"strings"
)

var (
	CREATE_SNAPSHOT = checkFlag("CREATE_SNAPSHOT")
)

func checkFlag(name string) bool {
	v := os.Getenv(name)
	return v == "true" || v == "1"
}

func RedisAddrs() []string {
	raw_addr := os.Getenv("REDIS_ADDR")
	return strings.Split(raw_addr, ",")
}

func MinioAddrs() []string {
	raw_addr := os.Getenv("MINIO_ADDR")
	return strings.Split(raw_addr, ",")
}
