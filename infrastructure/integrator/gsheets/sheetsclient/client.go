package sheetsclient

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

// Client is a read-only view over the spreadsheet source.
type Client interface {
	FetchRange(ctx context.Context, rangeName string) (*domain.RawSheet, error)
}

type SheetsClient struct {
	cfg *config.Config

	once    sync.Once
	service *sheets.Service
	initErr error
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{cfg: cfg}
}

// FetchRange retrieves one named range as a header row plus data rows.
// Credentials are validated before any network call: a misconfigured process
// answers with a config error instead of an opaque transport failure.
func (c *SheetsClient) FetchRange(ctx context.Context, rangeName string) (*domain.RawSheet, error) {
	if err := c.cfg.Google.Validate(); err != nil {
		return nil, err
	}

	service, err := c.sheetsService()
	if err != nil {
		return nil, errors.Wrap(err, "building sheets client")
	}

	resp, err := service.Spreadsheets.Values.Get(c.cfg.Google.SheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "fetching range %q", rangeName)
	}

	return rawSheetFromValues(resp.Values), nil
}

// sheetsService builds the API client lazily, once, from the service-account
// JWT. The token source outlives any single request.
func (c *SheetsClient) sheetsService() (*sheets.Service, error) {
	c.once.Do(func() {
		jwtConfig := &jwt.Config{
			Email:      c.cfg.Google.ClientEmail,
			PrivateKey: []byte(c.cfg.Google.PrivateKey),
			TokenURL:   google.JWTTokenURL,
			Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		}

		c.service, c.initErr = sheets.NewService(
			context.Background(),
			option.WithHTTPClient(jwtConfig.Client(context.Background())),
		)
	})

	return c.service, c.initErr
}

func rawSheetFromValues(values [][]interface{}) *domain.RawSheet {
	if len(values) == 0 {
		return &domain.RawSheet{}
	}

	sheet := &domain.RawSheet{Headers: cellStrings(values[0])}
	for _, row := range values[1:] {
		sheet.Rows = append(sheet.Rows, cellStrings(row))
	}
	return sheet
}

// cellStrings renders API cells as strings; numeric cells keep their exact
// decimal form so the normalizer can re-parse them.
func cellStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		switch v := cell.(type) {
		case string:
			out[i] = v
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
