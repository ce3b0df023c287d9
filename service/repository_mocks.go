package service

import (
	"context"
	"time"

	"nitroping/events"
	"nitroping/models"

	"github.com/stretchr/testify/mock"
)

// MockGuildConfigRepository is a mock implementation of GuildConfigRepository
type MockGuildConfigRepository struct {
	mock.Mock
}

func (m *MockGuildConfigRepository) Ensure(ctx context.Context, guildID string) (string, error) {
	args := m.Called(ctx, guildID)
	return args.String(0), args.Error(1)
}

func (m *MockGuildConfigRepository) Get(ctx context.Context, guildID string) *models.GuildConfig {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return models.NewGuildConfig(guildID)
	}
	return args.Get(0).(*models.GuildConfig)
}

func (m *MockGuildConfigRepository) Save(ctx context.Context, cfg *models.GuildConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// MockBoostRecordRepository is a mock implementation of BoostRecordRepository
type MockBoostRecordRepository struct {
	mock.Mock
}

func (m *MockBoostRecordRepository) Get(ctx context.Context, guildID, userID string) *models.BoostRecord {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return &models.BoostRecord{}
	}
	return args.Get(0).(*models.BoostRecord)
}

func (m *MockBoostRecordRepository) Find(ctx context.Context, guildID, userID string) (*models.BoostRecord, bool) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return &models.BoostRecord{}, args.Bool(1)
	}
	return args.Get(0).(*models.BoostRecord), args.Bool(1)
}

func (m *MockBoostRecordRepository) Save(ctx context.Context, guildID, userID string, record *models.BoostRecord) error {
	args := m.Called(ctx, guildID, userID, record)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// MockGuildConfigService is a mock implementation of GuildConfigService
type MockGuildConfigService struct {
	mock.Mock
}

func (m *MockGuildConfigService) EnsureGuild(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockGuildConfigService) GetConfig(ctx context.Context, guildID string) *models.GuildConfig {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return models.NewGuildConfig(guildID)
	}
	return args.Get(0).(*models.GuildConfig)
}

func (m *MockGuildConfigService) SetChannel(ctx context.Context, guildID, channelID string) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildConfigService) UnsetChannel(ctx context.Context, guildID string) error {
	args := m.Called(ctx, guildID)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetMessage(ctx context.Context, guildID, message string) error {
	args := m.Called(ctx, guildID, message)
	return args.Error(0)
}

func (m *MockGuildConfigService) SetRoles(ctx context.Context, guildID string, roleIDs []string) error {
	args := m.Called(ctx, guildID, roleIDs)
	return args.Error(0)
}

// MockBoostService is a mock implementation of BoostService
type MockBoostService struct {
	mock.Mock
}

func (m *MockBoostService) PreviousBoostStart(ctx context.Context, guildID, userID string) (*time.Time, bool) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*time.Time), args.Bool(1)
}

func (m *MockBoostService) RecordBaseline(ctx context.Context, member MemberSnapshot) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockBoostService) RecordTransition(ctx context.Context, before *time.Time, after MemberSnapshot) (models.Transition, error) {
	args := m.Called(ctx, before, after)
	return args.Get(0).(models.Transition), args.Error(1)
}
