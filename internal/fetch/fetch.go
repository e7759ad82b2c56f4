package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"freeship-watcher/config"
)

// Amazon serves a bot-check page to unrecognized clients, so requests go
// out with a real browser's header set.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/107.0.0.0 Safari/537.36 Edg/107.0.1418.35"

const (
	priceSelector    = "span.a-offscreen"
	deliverySelector = `span[data-csa-c-content-id="DEXUnifiedCXPDM"]`
	deliveryAttr     = "data-csa-c-delivery-price"
)

var (
	// ErrBadStatus marks a non-OK response from the product page.
	ErrBadStatus = errors.New("unexpected response status")
	// ErrPriceNotFound marks a page that loaded but carried no price element.
	ErrPriceNotFound = errors.New("price elements not found on page")
)

// Reading is one price observation. Produced fresh on every fetch and
// never cached. An empty field means the value was absent from the page.
type Reading struct {
	ItemPrice     string
	DeliveryPrice string
}

// FreeShipping reports whether the delivery price reads "free",
// case-insensitively.
func (r Reading) FreeShipping() bool {
	return strings.EqualFold(r.DeliveryPrice, "free")
}

// ShippingLabel is the delivery price for display, "Unknown" when the
// page did not expose one.
func (r Reading) ShippingLabel() string {
	if r.DeliveryPrice == "" {
		return "Unknown"
	}
	return r.DeliveryPrice
}

// Client fetches product pages and extracts price fields.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.Config) *Client {
	client := resty.New()
	client.SetTimeout(cfg.HTTPTimeout)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept-Language", "en-US,en;q=0.9")

	return &Client{http: client}
}

// Fetch performs exactly one GET against pageURL and extracts the item
// and delivery prices. Transport errors are returned wrapped; a non-OK
// status yields ErrBadStatus and a page without a price element yields
// ErrPriceNotFound. The delivery price may legitimately be empty on a
// successful read.
func (c *Client) Fetch(ctx context.Context, pageURL string) (Reading, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return Reading{}, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if res.StatusCode() != http.StatusOK {
		return Reading{}, fmt.Errorf("%w: %d", ErrBadStatus, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return Reading{}, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	itemPrice := strings.TrimSpace(doc.Find(priceSelector).First().Text())
	if itemPrice == "" {
		return Reading{}, ErrPriceNotFound
	}

	deliveryPrice, _ := doc.Find(deliverySelector).Attr(deliveryAttr)

	return Reading{
		ItemPrice:     itemPrice,
		DeliveryPrice: deliveryPrice,
	}, nil
}
