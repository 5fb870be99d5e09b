package postgres

import (
	"context"
	"fmt"
	"io"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/types"
)

var (
	// TypeRoomColumns holds the columns for the "type_room" table.
	TypeRoomColumns = []*schema.Column{
		{Name: "type_rom_id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TypeRoomTable holds the schema information for the "type_room" table.
	TypeRoomTable = &schema.Table{
		Name:       "type_room",
		Columns:    TypeRoomColumns,
		PrimaryKey: []*schema.Column{TypeRoomColumns[0]},
	}
	// StatusRoomColumns holds the columns for the "status_room" table.
	StatusRoomColumns = []*schema.Column{
		{Name: "status_rom_id", Type: field.TypeInt64, Increment: true},
		{Name: "description", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StatusRoomTable holds the schema information for the "status_room" table.
	StatusRoomTable = &schema.Table{
		Name:       "status_room",
		Columns:    StatusRoomColumns,
		PrimaryKey: []*schema.Column{StatusRoomColumns[0]},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "room_id", Type: field.TypeInt64, Increment: true},
		{Name: "room_number", Type: field.TypeInt},
		{Name: "daily_rate", Type: field.TypeFloat64, SchemaType: map[string]string{
			dialect.Postgres: "numeric(10,2)",
			dialect.SQLite:   "numeric(10,2)",
		}},
		{Name: "type_room_id", Type: field.TypeInt64},
		{Name: "status_room_id", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rooms_type_room_type",
				Columns:    []*schema.Column{RoomsColumns[3]},
				RefColumns: []*schema.Column{TypeRoomColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "rooms_status_room_status",
				Columns:    []*schema.Column{RoomsColumns[4]},
				RefColumns: []*schema.Column{StatusRoomColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_rooms_room_number",
				Unique:  true,
				Columns: []*schema.Column{RoomsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TypeRoomTable,
		StatusRoomTable,
		RoomsTable,
	}
)

func init() {
	RoomsTable.ForeignKeys[0].RefTable = TypeRoomTable
	RoomsTable.ForeignKeys[1].RefTable = StatusRoomTable
}

// Migrate creates or updates the hotel tables on the given database.
func Migrate(ctx context.Context, db *DB, logger *logger.Logger) error {
	runID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MIGRATION)
	logger.Infow("running database migrations", "run_id", runID, "dialect", db.Dialect())

	if err := create(ctx, entDriver(db)); err != nil {
		logger.Errorw("migration failed", "run_id", runID, "error", err)
		return err
	}

	logger.Infow("migration completed", "run_id", runID)
	return nil
}

// WriteTo writes the statements Migrate would execute to w without running them.
func WriteTo(ctx context.Context, db *DB, w io.Writer) error {
	return create(ctx, &schema.WriteDriver{Driver: entDriver(db), Writer: w})
}

func create(ctx context.Context, drv dialect.Driver) error {
	migrate, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := migrate.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("failed to create schema resources: %w", err)
	}
	return nil
}

func entDriver(db *DB) dialect.Driver {
	name := dialect.Postgres
	if db.Dialect() == types.DriverSQLite {
		name = dialect.SQLite
	}
	return entsql.OpenDB(name, db.DB.DB)
}
