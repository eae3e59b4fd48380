package app

import (
	"strings"
	"time"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/utils"
)

type Config struct {
	HTTPAddr        string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	KeywordCacheTTL time.Duration
	AllowOrigins    []string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	keywordCacheTTLSeconds := utils.GetEnvAsInt("KEYWORD_CACHE_TTL", 300, log)
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)

	var origins []string
	if raw := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		HTTPAddr:        httpAddr,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		KeywordCacheTTL: time.Duration(keywordCacheTTLSeconds) * time.Second,
		AllowOrigins:    origins,
	}
}
