// internal/client/trainer_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	appErrors "github.com/antohakim/gymtrack-backend/internal/errors"
	"github.com/antohakim/gymtrack-backend/internal/model"
)

// TrainerLookup is what the services need from the Trainer peer.
type TrainerLookup interface {
	GetByID(ctx context.Context, id int) (*model.Trainer, error)
}

// TrainerClient talks to the Trainer service over HTTP.
type TrainerClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTrainerClient(baseURL string) *TrainerClient {
	return &TrainerClient{
		BaseURL:    baseURL,
		HTTPClient: newHTTPClient(),
	}
}

func (c *TrainerClient) GetByID(ctx context.Context, id int) (*model.Trainer, error) {
	url := fmt.Sprintf("%s/trainers/%d", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, appErrors.NewDependencyUnavailable("trainer", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, appErrors.NewDependencyUnavailable("trainer", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, appErrors.NewNotFound("Trainer", id)
	case resp.StatusCode != http.StatusOK:
		return nil, appErrors.NewDependencyUnavailable("trainer",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var trainer model.Trainer
	if err := json.NewDecoder(resp.Body).Decode(&trainer); err != nil {
		return nil, appErrors.NewDependencyUnavailable("trainer", err)
	}
	return &trainer, nil
}

var _ TrainerLookup = (*TrainerClient)(nil)
