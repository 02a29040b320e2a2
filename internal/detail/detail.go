// Package detail fetches a draw's announcement page and extracts the
// article body from it.
package detail

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// articleSelectors are tried in order; the first non-empty match is used.
// The cwl.gov.cn announcement pages render the body inside a few known
// containers, with body as the catch-all.
var articleSelectors = []string{
	".news-content",
	".article",
	"#article",
	".content",
	"body",
}

// Article is the extracted announcement content of one draw detail page.
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	HTML  string `json:"html,omitempty"`
	Text  string `json:"text"`
}

// Fetcher retrieves and parses detail pages.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// NewFetcher creates a detail page fetcher.
func NewFetcher(httpClient *http.Client, userAgent string) *Fetcher {
	return &Fetcher{
		client:    httpClient,
		userAgent: userAgent,
		logger:    log.With().Str("component", "detail").Logger(),
	}
}

// Fetch retrieves the detail page at pageURL and extracts its article.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")

	f.logger.Debug().Str("url", pageURL).Msg("Fetching detail page")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch detail page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("detail page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse detail page: %w", err)
	}

	article := &Article{
		URL:   pageURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	sel := findArticle(doc)
	if sel == nil {
		return nil, fmt.Errorf("no article content found at %s", pageURL)
	}

	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, fmt.Errorf("render article html: %w", err)
	}
	article.HTML = html
	article.Text = strings.TrimSpace(sel.Text())

	f.logger.Debug().
		Str("url", pageURL).
		Str("title", article.Title).
		Int("text_len", len(article.Text)).
		Msg("Detail page extracted")

	return article, nil
}

// Markdown converts the article HTML to GitHub-flavored Markdown.
func (a *Article) Markdown() (string, error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return converter.ConvertString(a.HTML)
}

func findArticle(doc *goquery.Document) *goquery.Selection {
	for _, selector := range articleSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && strings.TrimSpace(sel.Text()) != "" {
			return sel
		}
	}
	return nil
}
