// Package pricing implements the mock analysis pipeline and the vendor quote
// generator. Analysis is deterministic per URL except for the shipping cost;
// quotes are freshly randomized on every call.
package pricing

import (
	"errors"
	"math"
	"math/rand"
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
	"github.com/nohsangwoo/smart-wholesale-platform-sub001/models"
)

// ErrMissingInput is returned before the pipeline runs when no URL was given.
var ErrMissingInput = errors.New("url is required")

// PlatformUnknown tags snapshots whose URL could not be parsed at all.
const PlatformUnknown = "알 수 없음"

// platformOther is the fallback for parseable URLs outside the known sites.
const platformOther = "기타 쇼핑몰"

// Ordered host matches; first hit wins.
var platformHosts = []struct {
	substr string
	name   string
}{
	{"alibaba.com", "Alibaba"},
	{"taobao.com", "Taobao"},
	{"1688.com", "1688"},
}

// Analyze maps a product URL to a synthetic snapshot. The base product, the
// margin rate and therefore the estimated price, fees and tax are stable for
// a given URL; only the shipping cost is re-rolled per call.
func Analyze(rawURL string) (models.ProductSnapshot, error) {
	if strings.TrimSpace(rawURL) == "" {
		return models.ProductSnapshot{}, ErrMissingInput
	}

	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}

	// Length-based selection is coarse: equal-length URLs collide on the
	// same base product. Kept as shipped.
	base := mockdata.Products[codeUnitLen(decoded)%len(mockdata.Products)]

	margin := marginRate(rawURL)
	price := base.OriginalPrice

	return models.ProductSnapshot{
		ID:             base.ID,
		Title:          base.Title,
		Platform:       classifyPlatform(rawURL),
		OriginalPrice:  price,
		EstimatedPrice: int(math.Ceil(float64(price)*margin/10)) * 10,
		Fees:           int(math.Round(float64(price) * 0.05)),
		Tax:            int(math.Round(float64(price) * 0.08)),
		ShippingCost:   15000 + rand.Intn(10000),
		ImageURL:       resolveImage(base.ImageURL),
		OriginalURL:    rawURL,
	}, nil
}

// marginRate hashes the full URL into one of six fixed rates in [1.30, 1.35].
func marginRate(rawURL string) float64 {
	return 1.30 + float64(abs32(hash31(rawURL))%6)/100
}

// hash31 is the rolling polynomial hash over UTF-16 code units, wrapped to
// 32-bit signed on every step.
func hash31(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

func abs32(v int32) int64 {
	n := int64(v)
	if n < 0 {
		return -n
	}
	return n
}

// codeUnitLen counts UTF-16 code units, matching how the catalog index was
// derived originally.
func codeUnitLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func classifyPlatform(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return PlatformUnknown
	}
	host := strings.ToLower(u.Host)
	for _, p := range platformHosts {
		if strings.Contains(host, p.substr) {
			return p.name
		}
	}
	return platformOther
}

// resolveImage substitutes the placeholder for missing or non-local paths.
func resolveImage(image string) string {
	if image == "" || !strings.HasPrefix(image, "/") {
		return mockdata.PlaceholderImage
	}
	return image
}
