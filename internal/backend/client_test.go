package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisanalley/web/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{BaseURL: srv.URL}, zerolog.Nop())
	require.NoError(t, err)
	return client, srv
}

func TestLoginParsesTokenAndNormalizesProfile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u-1","role":"2","isApproved":"1"}}`))
	}))

	result, err := client.Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Token)
	assert.Equal(t, session.RoleSeller, result.Profile.Role)
	assert.True(t, result.Profile.Approved)
}

func TestLoginAcceptsCapitalizedTokenField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Token":"tok-2","user":{"id":"u-1","role":1}}`))
	}))

	result, err := client.Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", result.Token)
	assert.Equal(t, session.RoleCustomer, result.Profile.Role)
}

func TestLoginMissingTokenIsAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":"u-1","role":1}}`))
	}))

	_, err := client.Login(context.Background(), "ana", "secret")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "no token")
}

func TestBadCredentialsSurfaceBackendMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid username or password."))
	}))

	_, err := client.Login(context.Background(), "ana", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid username or password.", apiErr.Message)
}

func TestAuthenticatedCallsAttachBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.MyProducts(context.Background(), "tok-9")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-9", gotAuth)
}

func TestPublicCallsCarryNoAuthorizationHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.Trending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedStatusesMapToSentinel(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := client.MyProducts(context.Background(), "stale-token")
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
	}
}

func TestBusinessErrorMessageExtractedFromJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Product is out of stock."}`))
	}))

	err := client.BuyProduct(context.Background(), "tok-1", "p-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Product is out of stock.", apiErr.Message)
	assert.Equal(t, "Product is out of stock.", UserMessage(err, "Purchase failed."))
}

func TestUnreachableBackendMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(Config{BaseURL: url}, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Products(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, "Unable to connect to the server.", UserMessage(err, "fallback"))
}

func TestEndpointPaths(t *testing.T) {
	var paths []string
	var methods []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := context.Background()
	_, _ = client.Products(ctx)
	_, _ = client.Categories(ctx)
	_ = client.CreateProduct(ctx, "t", ProductInput{Name: "Scarf"})
	_ = client.UpdateProduct(ctx, "t", "p-1", ProductInput{Name: "Scarf"})
	_ = client.DeleteProduct(ctx, "t", "p-1")
	_ = client.BuyProduct(ctx, "t", "p-1")
	_, _ = client.PendingSellers(ctx, "t")
	_ = client.ApproveSeller(ctx, "t", "s-1")
	_ = client.DeleteSeller(ctx, "t", "s-1")

	assert.Equal(t, []string{
		"/api/Products",
		"/api/Categories",
		"/api/Products/new-product",
		"/api/Products/p-1",
		"/api/Products/p-1",
		"/api/Products/p-1/buy",
		"/api/PlatformAdminSeller/pending-sellers",
		"/api/PlatformAdminSeller/approve/s-1",
		"/api/PlatformAdminSeller/delete-seller/s-1",
	}, paths)
	assert.Equal(t, []string{
		http.MethodGet, http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodDelete, http.MethodPost, http.MethodGet, http.MethodPost, http.MethodDelete,
	}, methods)
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"}, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "/relative/only"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestContextCancellationPropagates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Products(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable) || errors.Is(err, context.Canceled))
}
