package holidayclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type Client interface {
	GetHolidaysByYear(year int) (HolidaysResponse, error)
}

type HolidayAPIClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de feriados
func NewClient(cfg *config.Config) Client {
	return &HolidayAPIClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
