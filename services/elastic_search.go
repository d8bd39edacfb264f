package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"autobazaar/dto"
	"autobazaar/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/goccy/go-json"
)

// AdIndex là chỉ mục tìm kiếm toàn văn cho ads, nguồn dữ liệu chính vẫn là database
type AdIndex interface {
	Index(ctx context.Context, ad *models.Ad) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, q dto.SearchAdQuery) ([]models.Ad, error)
	Reindex(ctx context.Context, ads []models.Ad) error
}

// searchFields là các trường được so khớp, carName và brand có trọng số cao hơn
var searchFields = []string{
	"carName^3", "brand^3", "model^2", "city", "color",
	"technicalInfo", "additionalInfo", "address",
}

const searchSize = 50

type ElasticAdIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewElasticAdIndex(es *elasticsearch.Client, index string) *ElasticAdIndex {
	return &ElasticAdIndex{es: es, index: index}
}

func (e *ElasticAdIndex) Index(ctx context.Context, ad *models.Ad) error {
	res, err := e.es.Index(
		e.index,
		esutil.NewJSONReader(ad),
		e.es.Index.WithDocumentID(strconv.FormatUint(uint64(ad.ID), 10)),
		e.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index ad %d: %w", ad.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index ad %d: %s", ad.ID, res.Status())
	}
	return nil
}

func (e *ElasticAdIndex) Delete(ctx context.Context, id uint) error {
	res, err := e.es.Delete(e.index, strconv.FormatUint(uint64(id), 10), e.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete ad %d from index: %w", id, err)
	}
	defer res.Body.Close()
	// 404 nghĩa là document chưa từng được index
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete ad %d from index: %s", id, res.Status())
	}
	return nil
}

func (e *ElasticAdIndex) Search(ctx context.Context, q dto.SearchAdQuery) ([]models.Ad, error) {
	res, err := e.es.Search(
		e.es.Search.WithContext(ctx),
		e.es.Search.WithIndex(e.index),
		e.es.Search.WithBody(esutil.NewJSONReader(buildAdQuery(q))),
		e.es.Search.WithSize(searchSize),
	)
	if err != nil {
		return nil, fmt.Errorf("search ads: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search ads: %s", res.Status())
	}
	return parseAdHits(res.Body)
}

// Reindex ghi lại toàn bộ ads bằng Bulk API
func (e *ElasticAdIndex) Reindex(ctx context.Context, ads []models.Ad) error {
	if len(ads) == 0 {
		return nil
	}
	body, err := bulkBody(e.index, ads)
	if err != nil {
		return err
	}
	res, err := e.es.Bulk(bytes.NewReader(body), e.es.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk index ads: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("bulk index ads: %s", res.Status())
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if result.Errors {
		return fmt.Errorf("bulk index ads: some documents were rejected")
	}
	return nil
}

func bulkBody(index string, ads []models.Ad) ([]byte, error) {
	var buf bytes.Buffer
	for _, ad := range ads {
		meta := map[string]interface{}{
			"index": map[string]interface{}{"_index": index, "_id": strconv.FormatUint(uint64(ad.ID), 10)},
		}
		for _, doc := range []interface{}{meta, ad} {
			line, err := json.Marshal(doc)
			if err != nil {
				return nil, fmt.Errorf("encode ad %d: %w", ad.ID, err)
			}
			buf.Write(line)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

func term(field string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"term": map[string]interface{}{field: value}}
}

func match(field, value string) map[string]interface{} {
	return map[string]interface{}{"match": map[string]interface{}{field: value}}
}

// buildAdQuery: q dùng multi_match có fuzziness, các bộ lọc đặt trong filter
func buildAdQuery(q dto.SearchAdQuery) map[string]interface{} {
	boolQuery := map[string]interface{}{}

	if text := strings.TrimSpace(q.Q); text != "" {
		boolQuery["must"] = []map[string]interface{}{{
			"multi_match": map[string]interface{}{
				"query":     text,
				"fields":    searchFields,
				"fuzziness": "AUTO",
				"operator":  "or",
			},
		}}
	} else {
		boolQuery["must"] = []map[string]interface{}{{"match_all": map[string]interface{}{}}}
	}

	var filters []map[string]interface{}
	if q.Brand != "" {
		filters = append(filters, match("brand", q.Brand))
	}
	if q.City != "" {
		filters = append(filters, match("city", q.City))
	}
	if q.Status != nil {
		filters = append(filters, term("status", *q.Status))
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	}
}

func parseAdHits(body io.Reader) ([]models.Ad, error) {
	var result struct {
		Hits struct {
			Hits []struct {
				Source models.Ad `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	ads := make([]models.Ad, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ads = append(ads, hit.Source)
	}
	return ads, nil
}
