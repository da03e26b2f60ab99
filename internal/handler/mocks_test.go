package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishRPG_Go/internal/adventure"
	"github.com/osse101/BrandishRPG_Go/internal/character"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/equipment"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

// MockCharacterService mocks character.Service
type MockCharacterService struct {
	mock.Mock
}

func NewMockCharacterService(t cleanupT) *MockCharacterService {
	m := &MockCharacterService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCharacterService) Create(ctx context.Context, name string) (*domain.Character, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*domain.Character)
	return c, args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, characterID string) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	c, _ := args.Get(0).(*domain.Character)
	return c, args.Error(1)
}

func (m *MockCharacterService) Profile(ctx context.Context, characterID string) (*character.Profile, error) {
	args := m.Called(ctx, characterID)
	p, _ := args.Get(0).(*character.Profile)
	return p, args.Error(1)
}

func (m *MockCharacterService) MigrateLegacyBuffs(ctx context.Context, characterID string) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	c, _ := args.Get(0).(*domain.Character)
	return c, args.Error(1)
}

// MockEquipmentService mocks equipment.Service
type MockEquipmentService struct {
	mock.Mock
}

func NewMockEquipmentService(t cleanupT) *MockEquipmentService {
	m := &MockEquipmentService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEquipmentService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockEquipmentService) Generate(ctx context.Context, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error) {
	args := m.Called(ctx, slot, rarity, setName)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockEquipmentService) GenerateFor(ctx context.Context, characterID string, slot domain.Slot, rarity domain.Rarity, setName string) (*domain.Item, error) {
	args := m.Called(ctx, characterID, slot, rarity, setName)
	item, _ := args.Get(0).(*domain.Item)
	return item, args.Error(1)
}

func (m *MockEquipmentService) Enhance(ctx context.Context, characterID, itemID string) (*equipment.EnhanceResult, error) {
	args := m.Called(ctx, characterID, itemID)
	res, _ := args.Get(0).(*equipment.EnhanceResult)
	return res, args.Error(1)
}

func (m *MockEquipmentService) Equip(ctx context.Context, characterID, itemID string) (*domain.Character, error) {
	args := m.Called(ctx, characterID, itemID)
	c, _ := args.Get(0).(*domain.Character)
	return c, args.Error(1)
}

func (m *MockEquipmentService) Unequip(ctx context.Context, characterID string, slot domain.Slot) (*domain.Character, error) {
	args := m.Called(ctx, characterID, slot)
	c, _ := args.Get(0).(*domain.Character)
	return c, args.Error(1)
}

// MockDuelService mocks duel.Service
type MockDuelService struct {
	mock.Mock
}

func NewMockDuelService(t cleanupT) *MockDuelService {
	m := &MockDuelService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDuelService) Challenge(ctx context.Context, challengerID, opponentID string, wager int64) (*domain.Challenge, error) {
	args := m.Called(ctx, challengerID, opponentID, wager)
	ch, _ := args.Get(0).(*domain.Challenge)
	return ch, args.Error(1)
}

func (m *MockDuelService) Accept(ctx context.Context, opponentID string, challengeID uuid.UUID) (*domain.DuelResult, error) {
	args := m.Called(ctx, opponentID, challengeID)
	res, _ := args.Get(0).(*domain.DuelResult)
	return res, args.Error(1)
}

func (m *MockDuelService) Decline(ctx context.Context, characterID string, challengeID uuid.UUID) error {
	return m.Called(ctx, characterID, challengeID).Error(0)
}

func (m *MockDuelService) Pending(ctx context.Context, characterID string) ([]domain.Challenge, error) {
	args := m.Called(ctx, characterID)
	list, _ := args.Get(0).([]domain.Challenge)
	return list, args.Error(1)
}

// MockAdventureService mocks adventure.Service
type MockAdventureService struct {
	mock.Mock
}

func NewMockAdventureService(t cleanupT) *MockAdventureService {
	m := &MockAdventureService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdventureService) Adventure(ctx context.Context, characterID string) (*adventure.Outcome, error) {
	args := m.Called(ctx, characterID)
	out, _ := args.Get(0).(*adventure.Outcome)
	return out, args.Error(1)
}

func (m *MockAdventureService) Raid(ctx context.Context, characterID string) (*adventure.Outcome, error) {
	args := m.Called(ctx, characterID)
	out, _ := args.Get(0).(*adventure.Outcome)
	return out, args.Error(1)
}

// MockEventLogService mocks eventlog.Service
type MockEventLogService struct {
	mock.Mock
}

func NewMockEventLogService(t cleanupT) *MockEventLogService {
	m := &MockEventLogService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEventLogService) Subscribe(bus event.Bus, types []event.Type) {
	m.Called(bus, types)
}

func (m *MockEventLogService) History(ctx context.Context, characterID string, limit int) ([]eventlog.Entry, error) {
	args := m.Called(ctx, characterID, limit)
	out, _ := args.Get(0).([]eventlog.Entry)
	return out, args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockPinger mocks the readiness dependency
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
