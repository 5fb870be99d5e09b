package internal

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pedroramon/hotel-backend/internal/api/dto"
	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/domain/roomstatus"
	"github.com/pedroramon/hotel-backend/internal/domain/roomtype"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
	"github.com/pedroramon/hotel-backend/internal/repository"
	"github.com/pedroramon/hotel-backend/internal/service"
	"github.com/pedroramon/hotel-backend/internal/types"
	"github.com/pedroramon/hotel-backend/internal/validator"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ReferenceData is the content of a seed file
type ReferenceData struct {
	RoomTypes    []dto.CreateRoomTypeRequest   `mapstructure:"room_types"`
	RoomStatuses []dto.CreateRoomStatusRequest `mapstructure:"room_statuses"`
}

// SeedSummary counts what a seed run did
type SeedSummary struct {
	TypesCreated    int
	TypesSkipped    int
	StatusesCreated int
	StatusesSkipped int
	Errors          []string
}

type referenceSeeder struct {
	log      *logger.Logger
	types    service.RoomTypeService
	statuses service.RoomStatusService
	summary  SeedSummary
}

func newReferenceSeeder(log *logger.Logger, types service.RoomTypeService, statuses service.RoomStatusService) *referenceSeeder {
	return &referenceSeeder{log: log, types: types, statuses: statuses}
}

// loadReferenceData reads a YAML or JSON seed file, picked by extension.
func loadReferenceData(path string) (*ReferenceData, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data ReferenceData
	if err := v.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

// seed creates the room types and statuses that do not exist yet. Names and
// descriptions are matched case-insensitively after trimming.
func (s *referenceSeeder) seed(ctx context.Context, data *ReferenceData) error {
	existingTypes, err := s.types.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list room types: %w", err)
	}
	typeNames := lo.SliceToMap(existingTypes, func(t *roomtype.RoomType) (string, struct{}) {
		return normalize(t.Name), struct{}{}
	})

	for _, req := range data.RoomTypes {
		key := normalize(req.Name)
		if _, ok := typeNames[key]; ok {
			s.summary.TypesSkipped++
			continue
		}
		if err := req.Validate(); err != nil {
			s.fail("room type", req.Name, err)
			continue
		}
		created, err := s.types.Save(ctx, req.ToRoomType())
		if err != nil {
			s.fail("room type", req.Name, err)
			continue
		}
		typeNames[key] = struct{}{}
		s.summary.TypesCreated++
		s.log.Infow("created room type", "id", created.ID, "name", created.Name)
	}

	existingStatuses, err := s.statuses.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list room statuses: %w", err)
	}
	descriptions := lo.SliceToMap(existingStatuses, func(st *roomstatus.RoomStatus) (string, struct{}) {
		return normalize(st.Description), struct{}{}
	})

	for _, req := range data.RoomStatuses {
		key := normalize(req.Description)
		if _, ok := descriptions[key]; ok {
			s.summary.StatusesSkipped++
			continue
		}
		if err := req.Validate(); err != nil {
			s.fail("room status", req.Description, err)
			continue
		}
		created, err := s.statuses.Save(ctx, req.ToRoomStatus())
		if err != nil {
			s.fail("room status", req.Description, err)
			continue
		}
		descriptions[key] = struct{}{}
		s.summary.StatusesCreated++
		s.log.Infow("created room status", "id", created.ID, "description", created.Description)
	}

	return nil
}

func (s *referenceSeeder) fail(kind, label string, err error) {
	s.log.Errorw("failed to seed "+kind, "value", label, "error", err)
	s.summary.Errors = append(s.summary.Errors, fmt.Sprintf("%s %q: %v", kind, label, err))
}

func (s *referenceSeeder) printSummary() {
	s.log.Infow("Reference data seed summary",
		"types_created", s.summary.TypesCreated,
		"types_skipped", s.summary.TypesSkipped,
		"statuses_created", s.summary.StatusesCreated,
		"statuses_skipped", s.summary.StatusesSkipped,
		"errors", len(s.summary.Errors),
	)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SeedReferenceData loads room types and statuses from FILE_PATH
func SeedReferenceData() error {
	filePath := os.Getenv("FILE_PATH")
	if filePath == "" {
		return fmt.Errorf("file path is required")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	validator.NewValidator()

	data, err := loadReferenceData(filePath)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	params := service.NewServiceParams(
		log,
		cfg,
		repository.NewRoomTypeRepository(db, log),
		repository.NewRoomStatusRepository(db, log),
		repository.NewRoomRepository(db, log),
	)
	seeder := newReferenceSeeder(log, service.NewRoomTypeService(params), service.NewRoomStatusService(params))

	runID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SEED)
	ctx := types.SetRequestID(context.Background(), runID)

	log.Infow("Starting reference data seed",
		"run_id", runID,
		"file", filePath,
		"room_types", len(data.RoomTypes),
		"room_statuses", len(data.RoomStatuses),
	)

	if err := seeder.seed(ctx, data); err != nil {
		return err
	}
	seeder.printSummary()
	return nil
}
