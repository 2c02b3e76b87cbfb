package bizconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/bizconfig"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the configuration rows owned by the surrounding
// application. Both tables hold at most one active row; a missing row is not
// an error.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) bizconfig.Source {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) LoadCompanySettings(ctx context.Context) (*bizconfig.CompanySettings, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT company_name, business_type, company_phone, address_line, city, state, zip, service_area_zips
		 FROM company_settings
		 WHERE is_active
		 ORDER BY updated_at DESC
		 LIMIT 1`)

	var cs bizconfig.CompanySettings
	err := row.Scan(&cs.CompanyName, &cs.BusinessType, &cs.CompanyPhone,
		&cs.AddressLine, &cs.City, &cs.State, &cs.Zip, &cs.ServiceAreaZips)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load company settings: %w", err)
	}
	return &cs, nil
}

func (s *PostgresSource) LoadAgentConfig(ctx context.Context) (*bizconfig.AgentConfig, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT company_name, business_type, company_phone, agent_name,
		        diagnostic_price, emergency_surcharge,
		        service_area_zips, service_types, business_hours, custom_prompt_additions
		 FROM ai_dispatcher_configs
		 WHERE is_active
		 ORDER BY updated_at DESC
		 LIMIT 1`)

	var ac bizconfig.AgentConfig
	var hoursJSON []byte
	err := row.Scan(&ac.CompanyName, &ac.BusinessType, &ac.CompanyPhone, &ac.AgentName,
		&ac.DiagnosticPrice, &ac.EmergencySurcharge,
		&ac.ServiceAreaZips, &ac.ServiceTypes, &hoursJSON, &ac.CustomPromptAdditions)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load agent config: %w", err)
	}
	if hours, ok := decodeBusinessHours(hoursJSON); ok {
		ac.BusinessHours = hours
	}
	return &ac, nil
}

type dayHoursJSON struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type businessHoursJSON struct {
	Weekday  *dayHoursJSON `json:"weekday"`
	Saturday *dayHoursJSON `json:"saturday"`
	Sunday   *dayHoursJSON `json:"sunday"`
}

// decodeBusinessHours tolerates missing or malformed schedule JSON; the merge
// layer substitutes defaults when it returns nothing.
func decodeBusinessHours(data []byte) (*bizconfig.BusinessHours, bool) {
	if len(data) == 0 {
		return nil, false
	}
	var raw businessHoursJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}
	if raw.Weekday == nil && raw.Saturday == nil && raw.Sunday == nil {
		return nil, false
	}
	hours := bizconfig.BusinessHours{}
	if raw.Weekday != nil {
		hours.Weekday = bizconfig.DayHours(*raw.Weekday)
	}
	if raw.Saturday != nil {
		hours.Saturday = bizconfig.DayHours(*raw.Saturday)
	}
	if raw.Sunday != nil {
		hours.Sunday = bizconfig.DayHours(*raw.Sunday)
	}
	return &hours, true
}
