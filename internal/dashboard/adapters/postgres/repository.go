package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleet-dashboard-service/internal/dashboard/core/domain"
	"fleet-dashboard-service/internal/dashboard/core/ports"
	pgplatform "fleet-dashboard-service/internal/platform/postgres"
)

type (
	RowScanner = pgplatform.Rows
	DB         = pgplatform.Querier
)

const EventsTable = "dados_veiculo"

// Order matters: scanRow reads the values positionally.
var eventColumns = []string{
	"data_hora_local",
	"data_hora_utc",
	"motorista_nome",
	"motorista_cpf",
	"tipo_operacao",
	"operacao_atual",
	"ultimo_evento_tipo",
	"dms_pessoa_detectada",
	"dms_olhos_fechados",
	"dms_bocejo_detectado",
	"dms_celular_detectado",
	"dms_postura_correta",
	"falso_positivo",
	"excesso_velocidade",
	"panico",
}

var listRecentSQL = `
SELECT ` + selectList() + `
FROM ` + EventsTable + `
ORDER BY data_hora_local DESC NULLS LAST
LIMIT $1`

// selectList reads the timestamp columns as text so zoneless values keep
// their wall clock.
func selectList() string {
	exprs := make([]string, len(eventColumns))
	for i, col := range eventColumns {
		if strings.HasPrefix(col, "data_hora_") {
			exprs[i] = col + "::text AS " + col
			continue
		}
		exprs[i] = col
	}
	return strings.Join(exprs, ", ")
}

type EventRowRepository struct {
	db DB
}

func NewEventRowRepository(db DB) *EventRowRepository {
	return &EventRowRepository{db: db}
}

var _ ports.EventRowReaderPort = (*EventRowRepository)(nil)

func (r *EventRowRepository) ListRecent(ctx context.Context, limit int) ([]domain.EventRow, error) {
	if limit <= 0 || limit > ports.MaxRows {
		limit = ports.MaxRows
	}

	rows, err := r.db.QueryContext(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.EventRow, 0, limit)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// scanRow scans into any because the flag columns are not typed consistently
// across devices.
func scanRow(rows RowScanner) (domain.EventRow, error) {
	vals := make([]any, len(eventColumns))
	dest := make([]any, len(eventColumns))
	for i := range vals {
		dest[i] = &vals[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return domain.EventRow{}, err
	}

	return domain.EventRow{
		LocalTime:        asText(vals[0]),
		UTCTime:          asText(vals[1]),
		DriverName:       asText(vals[2]),
		DriverCPF:        asText(vals[3]),
		OperationType:    asText(vals[4]),
		CurrentOperation: asText(vals[5]),
		LastEventType:    asText(vals[6]),
		PersonDetected:   domain.ParseFlag(vals[7]),
		EyesClosed:       domain.ParseFlag(vals[8]),
		Yawn:             domain.ParseFlag(vals[9]),
		PhoneDetected:    domain.ParseFlag(vals[10]),
		CorrectPosture:   domain.ParseFlag(vals[11]),
		FalsePositive:    domain.ParseFlag(vals[12]),
		Speeding:         domain.ParseFlag(vals[13]),
		Panic:            domain.ParseFlag(vals[14]),
	}, nil
}

func asText(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case []byte:
		s = string(t)
	case time.Time:
		s = t.Format(time.RFC3339Nano)
	default:
		s = fmt.Sprint(t)
	}
	return &s
}
