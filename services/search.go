package services

import (
	"sort"
	"strings"

	"autobazaar/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const similarityThreshold = 0.7

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

func adKeywords(ad models.Ad) []string {
	var out []string
	for _, field := range []string{ad.CarName, ad.Brand, ad.Model, ad.City, ad.Color} {
		out = append(out, strings.Fields(normalizeInput(field))...)
	}
	return out
}

// fuzzyRank xếp hạng ads theo độ gần đúng với query, dùng khi tìm kiếm chuỗi con không có kết quả
func fuzzyRank(query string, ads []models.Ad) []models.Ad {
	terms := strings.Fields(normalizeInput(query))
	if len(terms) == 0 || len(ads) == 0 {
		return nil
	}

	vocabulary := map[string]struct{}{}
	for _, ad := range ads {
		for _, kw := range adKeywords(ad) {
			vocabulary[kw] = struct{}{}
		}
	}
	words := make([]string, 0, len(vocabulary))
	for w := range vocabulary {
		words = append(words, w)
	}
	sort.Strings(words)
	cm := closestmatch.New(words, []int{2, 3})

	// sửa lỗi chính tả từng từ trong query theo từ điển của ads
	corrected := make([]string, 0, len(terms))
	for _, term := range terms {
		best := term
		if match := cm.Closest(term); match != "" && calculateSimilarity(term, match) > similarityThreshold {
			best = match
		}
		corrected = append(corrected, best)
	}

	type scored struct {
		ad    models.Ad
		score float64
	}
	var hits []scored
	for _, ad := range ads {
		keywords := adKeywords(ad)
		total := 0.0
		for _, term := range corrected {
			bestSim := 0.0
			for _, kw := range keywords {
				if sim := calculateSimilarity(term, kw); sim > bestSim {
					bestSim = sim
				}
			}
			if bestSim > similarityThreshold {
				total += bestSim
			}
		}
		if total > 0 {
			hits = append(hits, scored{ad: ad, score: total})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	out := make([]models.Ad, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.ad)
	}
	return out
}
