// Package models defines the normalized draw record shared by the fetcher,
// the aggregator, and the export writers.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SiteOrigin is the welfare lottery site root, used to absolutize the
// relative detail links the API hands back.
const SiteOrigin = "https://www.cwl.gov.cn"

// RawDraw is one decoded but not yet normalized draw item from the API.
type RawDraw map[string]interface{}

// DrawRecord represents a single SSQ draw, normalized from one raw API item.
// Amounts stay as strings: the API returns free-form formatted values
// ("358,936,310" and the like) and we never do arithmetic on them.
type DrawRecord struct {
	Issue        string   `json:"issue"`
	DrawDate     string   `json:"draw_date"`
	RedNumbers   []string `json:"red_numbers"`
	BlueNumbers  []string `json:"blue_numbers"`
	Sales        string   `json:"sales"`
	PoolMoney    string   `json:"pool_money"`
	PrizeDetails string   `json:"prize_details"`
	DetailsLink  string   `json:"details_link,omitempty"`
}

// Candidate key lists per attribute. The upstream payload has drifted between
// these names over time; the first present, non-empty value wins.
var (
	issueKeys = []string{"code", "issue"}
	dateKeys  = []string{"date", "drawDate"}
	redKeys   = []string{"red", "redStr"}
	blueKeys  = []string{"blue", "blueStr"}
	salesKeys = []string{"sales", "saleMoney"}
	poolKeys  = []string{"poolmoney", "poolMoney"}
	prizeKeys = []string{"content", "prizeContent"}
	linkKeys  = []string{"detailsLink", "detailLink"}
)

// NewDrawRecord builds a DrawRecord from one raw API item.
func NewDrawRecord(raw RawDraw) DrawRecord {
	return DrawRecord{
		Issue:        firstString(raw, issueKeys),
		DrawDate:     firstString(raw, dateKeys),
		RedNumbers:   SplitNumbers(firstString(raw, redKeys)),
		BlueNumbers:  SplitNumbers(firstString(raw, blueKeys)),
		Sales:        firstString(raw, salesKeys),
		PoolMoney:    firstString(raw, poolKeys),
		PrizeDetails: firstString(raw, prizeKeys),
		DetailsLink:  ResolveLink(firstString(raw, linkKeys)),
	}
}

// SplitNumbers parses a comma-delimited number string into trimmed tokens,
// discarding empty ones.
func SplitNumbers(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	numbers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			numbers = append(numbers, p)
		}
	}
	if len(numbers) == 0 {
		return nil
	}
	return numbers
}

// ResolveLink absolutizes a site-relative detail link. Links that already
// carry a scheme are returned unchanged.
func ResolveLink(link string) string {
	if link == "" || strings.HasPrefix(link, "http") {
		return link
	}
	return SiteOrigin + link
}

// firstString returns the string form of the first present, non-empty value
// among the candidate keys.
func firstString(raw RawDraw, keys []string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s := coerceString(v); s != "" {
			return s
		}
	}
	return ""
}

// coerceString renders a decoded JSON value as a string. Numbers come out of
// encoding/json as float64; issue codes like 2024001 must not turn into
// scientific notation.
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
