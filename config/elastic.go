package config

import (
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
)

// ConnectElastic trả về nil khi chưa cấu hình ELASTIC_URL, khi đó tìm kiếm chỉ dùng database
func ConnectElastic(cfg *Config) (*elasticsearch.Client, error) {
	if cfg.ElasticURL == "" {
		return nil, nil
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("init elasticsearch: %w", err)
	}

	log.Println("Elasticsearch client ready:", cfg.ElasticURL)
	return es, nil
}
