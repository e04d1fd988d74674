package sink

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ScottSyms/RustAISe/internal/domain"
	"github.com/ScottSyms/RustAISe/internal/ports"
)

const postgresColumns = 22

// PostgresSink batch-inserts decoded records into a single table, one
// multi-row INSERT per batch.
type PostgresSink struct {
	db        *sql.DB
	tableName string
}

func NewPostgresSink(db *sql.DB, table string) *PostgresSink {
	return &PostgresSink{db: db, tableName: table}
}

func (p *PostgresSink) Name() string { return "postgres" }

func (p *PostgresSink) WriteBatch(records []*domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(p.tableName)
	b.WriteString(" (landfall_time, group_id, satellite_acquisition_time, source, channel," +
		" raw_payload, message_type, message_class, mmsi, latitude, longitude, call_sign," +
		" destination, name, ship_type, eta, draught, imo, course_over_ground," +
		" position_accuracy, speed_over_ground, navigation_status) VALUES ")

	args := make([]any, 0, len(records)*postgresColumns)
	for i, rec := range records {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(")
		for c := 0; c < postgresColumns; c++ {
			if c > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, "$%d", len(args)+c+1)
		}
		b.WriteString(")")

		args = append(args,
			rec.LandfallTime,
			rec.Group,
			rec.SatelliteAcquisitionTime,
			rec.Source,
			rec.Channel,
			rec.RawPayload,
			rec.MessageType,
			rec.MessageClass,
			rec.MMSI,
			rec.Latitude,
			rec.Longitude,
			rec.CallSign,
			rec.Destination,
			rec.Name,
			rec.ShipType,
			rec.ETA,
			rec.Draught,
			rec.IMO,
			rec.CourseOverGround,
			rec.PositionAccuracy,
			rec.SpeedOverGround,
			rec.NavigationStatus,
		)
	}

	_, err := p.db.Exec(b.String(), args...)
	return err
}

var _ ports.RecordSink = (*PostgresSink)(nil)
