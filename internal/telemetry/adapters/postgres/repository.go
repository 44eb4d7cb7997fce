package postgres

import (
	"context"
	"database/sql"

	"fleet-dashboard-service/internal/telemetry/core/domain"
	"fleet-dashboard-service/internal/telemetry/core/ports"
)

// localLayout keeps the wall clock when written to a timestamp column.
const localLayout = "2006-01-02 15:04:05"

// DB is satisfied by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type VehicleEventRepository struct {
	db DB
}

func NewVehicleEventRepository(db DB) *VehicleEventRepository {
	return &VehicleEventRepository{db: db}
}

var _ ports.VehicleEventRepositoryPort = (*VehicleEventRepository)(nil)

const insertEventSQL = `
INSERT INTO dados_veiculo (
    data_hora_local,
    data_hora_utc,
    motorista_nome,
    motorista_cpf,
    tipo_operacao,
    operacao_atual,
    ultimo_evento_tipo,
    dms_pessoa_detectada,
    dms_olhos_fechados,
    dms_bocejo_detectado,
    dms_celular_detectado,
    dms_postura_correta,
    falso_positivo,
    excesso_velocidade,
    panico,
    dedupe_key
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8,
    $9, $10, $11, $12, $13, $14, $15, $16
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *VehicleEventRepository) InsertEvent(ctx context.Context, e *domain.VehicleEvent) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.LocalTime.Format(localLayout),
		e.OccurredAt,
		nullString(e.DriverName),
		nullString(e.DriverCPF),
		nullString(e.OperationType),
		nullString(e.CurrentOperation),
		nullString(e.EventType),
		nullBool(e.Flags.PersonDetected),
		nullBool(e.Flags.EyesClosed),
		nullBool(e.Flags.Yawn),
		nullBool(e.Flags.PhoneDetected),
		nullBool(e.Flags.CorrectPosture),
		nullBool(e.Flags.FalsePositive),
		nullBool(e.Flags.Speeding),
		nullBool(e.Flags.Panic),
		e.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
