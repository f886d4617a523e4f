// Package slack delivers shopping lists to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"recipepairs/shopping"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	webhookURL string
	httpClient doer
}

func NewClient(webhookURL string, httpClient doer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

func (c *Client) PostMessage(ctx context.Context, channel string, message string) error {
	payload, err := json.Marshal(map[string]any{
		"channel": channel,
		"text":    message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to post message: %s", resp.Status)
	}

	return nil
}

// PostShoppingList posts items to channel grouped by store and aisle. An empty list is not posted.
func (c *Client) PostShoppingList(ctx context.Context, channel string, items []shopping.SelectedIngredient) error {
	if len(items) == 0 {
		return nil
	}
	return c.PostMessage(ctx, channel, FormatShoppingList(items))
}

// FormatShoppingList renders items as Slack mrkdwn, one section per store in first-seen order
// and one line per aisle within it.
func FormatShoppingList(items []shopping.SelectedIngredient) string {
	type aisle struct {
		name        string
		ingredients []string
	}
	type store struct {
		name   string
		aisles []*aisle
	}

	var stores []*store
	byStore := map[string]*store{}
	for _, it := range items {
		s, ok := byStore[it.Store]
		if !ok {
			s = &store{name: it.Store}
			byStore[it.Store] = s
			stores = append(stores, s)
		}

		var a *aisle
		for _, existing := range s.aisles {
			if existing.name == it.Aisle {
				a = existing
				break
			}
		}
		if a == nil {
			a = &aisle{name: it.Aisle}
			s.aisles = append(s.aisles, a)
		}
		a.ingredients = append(a.ingredients, it.Ingredient)
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":shopping_trolley: Shopping list (%d items)", len(items))
	for _, s := range stores {
		fmt.Fprintf(&b, "\n*%s*", s.name)
		for _, a := range s.aisles {
			fmt.Fprintf(&b, "\n• Aisle %s: %s", a.name, strings.Join(a.ingredients, ", "))
		}
	}
	return b.String()
}
