// internal/client/customer_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

// CustomerLookup is what the services need from the Customer peer.
type CustomerLookup interface {
	GetByID(ctx context.Context, id int) (*model.Customer, error)
}

// CustomerClient talks to the Customer service over HTTP.
type CustomerClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewCustomerClient(baseURL string) *CustomerClient {
	return &CustomerClient{
		BaseURL:    baseURL,
		HTTPClient: newHTTPClient(),
	}
}

// GetByID fetches a customer from the peer service.
func (c *CustomerClient) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	url := fmt.Sprintf("%s/customers/%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, appErrors.NewDependencyUnavailable("customer", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, appErrors.NewDependencyUnavailable("customer", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, appErrors.NewNotFound("Customer", id)
	case resp.StatusCode != http.StatusOK:
		return nil, appErrors.NewDependencyUnavailable("customer",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var customer model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, appErrors.NewDependencyUnavailable("customer", err)
	}
	return &customer, nil
}

var _ CustomerLookup = (*CustomerClient)(nil)
