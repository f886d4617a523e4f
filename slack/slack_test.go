package slack_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"recipepairs/shopping"
	"recipepairs/slack"

	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

type mockDoer struct {
	resp   *http.Response
	err    error
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	if m.doFunc != nil {
		return m.doFunc(req)
	}
	return m.resp, m.err
}

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBufferString("ok"))}
}

var testItems = []shopping.SelectedIngredient{
	{Ingredient: "salt", Recipe: "Tomato Soup", Store: "Corner Grocery", Aisle: "7"},
	{Ingredient: "tomatoes", Recipe: "Tomato Soup", Store: "Farmers Market", Aisle: "1"},
	{Ingredient: "pepper", Recipe: "Tomato Soup", Store: "Corner Grocery", Aisle: "7"},
	{Ingredient: "flour", Recipe: "Garlic Bread", Store: "Corner Grocery", Aisle: "3"},
}

func TestNewClient(t *testing.T) {
	webhook := "http://slack.com/webhook"
	client := slack.NewClient(webhook, &mockDoer{})
	must.NotNil(t, client, "expected non-nil client")
}

func TestPostMessage(t *testing.T) {
	tests := []struct {
		name    string
		doFunc  func(req *http.Request) (*http.Response, error)
		wantErr string
	}{
		{
			name: "success",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return okResponse(), nil
			},
		},
		{
			name: "failure status",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{StatusCode: http.StatusBadRequest, Status: "400 Bad Request", Body: io.NopCloser(bytes.NewBufferString("bad request"))}, nil
			},
			wantErr: "failed to post message: 400 Bad Request",
		},
		{
			name: "do error",
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("network error")
			},
			wantErr: "post message: network error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := slack.NewClient("http://example.com/webhook", &mockDoer{doFunc: tt.doFunc})
			err := client.PostMessage(context.Background(), "#groceries", "Hello, world!")
			if tt.wantErr == "" {
				should.NoError(t, err)
				return
			}
			should.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPostShoppingList(t *testing.T) {
	t.Run("posts the formatted list", func(t *testing.T) {
		var got map[string]any
		client := slack.NewClient("http://example.com/webhook", &mockDoer{doFunc: func(req *http.Request) (*http.Response, error) {
			must.Equal(t, "application/json", req.Header.Get("Content-Type"))
			must.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			return okResponse(), nil
		}})

		err := client.PostShoppingList(context.Background(), "#groceries", testItems)
		must.NoError(t, err)
		should.Equal(t, "#groceries", got["channel"])
		should.Equal(t, slack.FormatShoppingList(testItems), got["text"])
	})

	t.Run("empty list is not posted", func(t *testing.T) {
		called := false
		client := slack.NewClient("http://example.com/webhook", &mockDoer{doFunc: func(req *http.Request) (*http.Response, error) {
			called = true
			return okResponse(), nil
		}})

		must.NoError(t, client.PostShoppingList(context.Background(), "#groceries", nil))
		should.False(t, called)
	})
}

func TestFormatShoppingList(t *testing.T) {
	want := ":shopping_trolley: Shopping list (4 items)" +
		"\n*Corner Grocery*" +
		"\n• Aisle 7: salt, pepper" +
		"\n• Aisle 3: flour" +
		"\n*Farmers Market*" +
		"\n• Aisle 1: tomatoes"
	should.Equal(t, want, slack.FormatShoppingList(testItems))
}
