package pyroscope

import (
	"context"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"go.uber.org/fx"
)

type Service struct {
	cfg      *config.Configuration
	logger   *logger.Logger
	profiler *pyroscope.Profiler
}

// Module provides fx options for Pyroscope
func Module() fx.Option {
	return fx.Options(
		fx.Provide(NewPyroscopeService),
		fx.Invoke(RegisterHooks),
	)
}

// NewPyroscopeService creates a new Pyroscope service
func NewPyroscopeService(cfg *config.Configuration, logger *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterHooks starts the profiler with the app and stops it on shutdown
func RegisterHooks(lc fx.Lifecycle, svc *Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Start()
		},
		OnStop: func(ctx context.Context) error {
			return svc.Stop()
		},
	})
}

// Start begins continuous profiling when enabled in config
func (s *Service) Start() error {
	if !s.cfg.Pyroscope.Enabled {
		s.logger.Info("Pyroscope profiling is disabled")
		return nil
	}

	profileTypes := s.profileTypes()
	pyroscopeConfig := pyroscope.Config{
		ApplicationName: s.cfg.Pyroscope.ApplicationName,
		ServerAddress:   s.cfg.Pyroscope.ServerAddress,
		ProfileTypes:    profileTypes,
		SampleRate:      s.cfg.Pyroscope.SampleRate,
		DisableGCRuns:   s.cfg.Pyroscope.DisableGCRuns,
		Logger:          s,
	}
	if s.cfg.Pyroscope.BasicAuthUser != "" {
		pyroscopeConfig.BasicAuthUser = s.cfg.Pyroscope.BasicAuthUser
		pyroscopeConfig.BasicAuthPassword = s.cfg.Pyroscope.BasicAuthPass
	}

	profiler, err := pyroscope.Start(pyroscopeConfig)
	if err != nil {
		s.logger.Errorw("failed to start pyroscope", "error", err)
		return err
	}
	s.profiler = profiler

	s.logger.Infow("pyroscope profiling started",
		"application_name", s.cfg.Pyroscope.ApplicationName,
		"server_address", s.cfg.Pyroscope.ServerAddress,
		"has_basic_auth", s.cfg.Pyroscope.BasicAuthUser != "",
		"profile_types", profileTypes,
		"sample_rate", s.cfg.Pyroscope.SampleRate,
	)
	return nil
}

// Stop flushes and stops the profiler if it was started
func (s *Service) Stop() error {
	if s.profiler == nil {
		return nil
	}
	s.logger.Info("stopping pyroscope profiling")
	return s.profiler.Stop()
}

// pyroscope.Logger
func (s *Service) Debugf(format string, args ...interface{}) {}

func (s *Service) Infof(format string, args ...interface{}) {
	s.logger.Infof("[Pyroscope] "+format, args...)
}

func (s *Service) Errorf(format string, args ...interface{}) {
	s.logger.Errorf("[Pyroscope] "+format, args...)
}

// IsEnabled returns whether Pyroscope profiling is enabled
func (s *Service) IsEnabled() bool {
	return s.cfg.Pyroscope.Enabled
}

func (s *Service) profileTypes() []pyroscope.ProfileType {
	if len(s.cfg.Pyroscope.ProfileTypes) == 0 {
		return []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileGoroutines,
		}
	}

	var types []pyroscope.ProfileType
	for _, profileType := range s.cfg.Pyroscope.ProfileTypes {
		switch strings.ToLower(profileType) {
		case "cpu":
			types = append(types, pyroscope.ProfileCPU)
		case "inuse_objects":
			types = append(types, pyroscope.ProfileInuseObjects)
		case "alloc_objects":
			types = append(types, pyroscope.ProfileAllocObjects)
		case "inuse_space":
			types = append(types, pyroscope.ProfileInuseSpace)
		case "alloc_space":
			types = append(types, pyroscope.ProfileAllocSpace)
		case "goroutines":
			types = append(types, pyroscope.ProfileGoroutines)
		case "mutex_count":
			types = append(types, pyroscope.ProfileMutexCount)
		case "mutex_duration":
			types = append(types, pyroscope.ProfileMutexDuration)
		case "block_count":
			types = append(types, pyroscope.ProfileBlockCount)
		case "block_duration":
			types = append(types, pyroscope.ProfileBlockDuration)
		default:
			s.logger.Warnw("unknown profile type", "type", profileType)
		}
	}
	return types
}

// TagWrapper runs fn with the given profiling labels attached
func (s *Service) TagWrapper(ctx context.Context, labels map[string]string, fn func(context.Context)) {
	if !s.IsEnabled() {
		fn(ctx)
		return
	}

	labelPairs := make([]string, 0, len(labels)*2)
	for key, value := range labels {
		labelPairs = append(labelPairs, key, value)
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(labelPairs...), fn)
}
