package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MatiPium/proyecto-nuevo-backend2/internal/infrastructure/config"
)

// InterfaceRedisService define la caché de preferencias de sesión
type InterfaceRedisService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	GetPageSize(ctx context.Context, userID uint, view string, defaultSize int) int
	SetPageSize(ctx context.Context, userID uint, view string, size int) error
	Ping(ctx context.Context) error
}

// RedisService guarda preferencias efímeras por usuario, hoy solo el
// tamaño de página elegido en cada lista
type RedisService struct {
	client *redis.Client
}

// Las preferencias duran 30 días sin uso
const pageSizeTTL = 30 * 24 * time.Hour

// NewRedisService crea el cliente de Redis
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisService{client: client}
}

// 1 Set guarda un valor con expiración
func (s *RedisService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

// 2 Get recupera un valor
func (s *RedisService) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

// 3 Delete borra una clave
func (s *RedisService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func pageSizeKey(userID uint, view string) string {
	return fmt.Sprintf("page_size:%d:%s", userID, view)
}

// 4 GetPageSize devuelve el tamaño de página guardado para la vista.
// Sin preferencia guardada o sin Redis disponible devuelve el valor
// por defecto de la vista.
func (s *RedisService) GetPageSize(ctx context.Context, userID uint, view string, defaultSize int) int {
	value, err := s.client.Get(ctx, pageSizeKey(userID, view)).Result()
	if err != nil {
		return defaultSize
	}
	size, err := strconv.Atoi(value)
	if err != nil {
		return defaultSize
	}
	return size
}

// 5 SetPageSize guarda la preferencia de tamaño de página
func (s *RedisService) SetPageSize(ctx context.Context, userID uint, view string, size int) error {
	return s.client.Set(ctx, pageSizeKey(userID, view), size, pageSizeTTL).Err()
}

// 6 Ping verifica la conexión
func (s *RedisService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
