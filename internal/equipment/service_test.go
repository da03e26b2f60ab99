package equipment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
	"github.com/osse101/BrandishRPG_Go/internal/testing/fakestore"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

func ofType(t event.Type) interface{} {
	return mock.MatchedBy(func(e event.Event) bool { return e.Type == t })
}

type fixture struct {
	store *fakestore.Store
	pub   *MockPublisher
	svc   Service
}

func newFixture(t *testing.T, src rng.Source, cached bool) *fixture {
	t.Helper()
	store := fakestore.New()
	pub := &MockPublisher{}

	var items repository.Item
	if cached {
		items = NewCachedItemStore(store, 16, time.Minute)
	}
	svc := NewService(store, items, concurrency.NewLockManager(), pub, src)
	return &fixture{store: store, pub: pub, svc: svc}
}

func seedCharacter(store *fakestore.Store, balance int64, itemIDs ...string) *domain.Character {
	c := domain.NewCharacter("char-1", "Ayla", balance)
	for _, id := range itemIDs {
		c.AddInventory(id, 1)
	}
	store.PutCharacter(c)
	return c
}

func weapon(id string, level int) *domain.Item {
	return &domain.Item{
		ID:       id,
		Name:     "Rusty Sword",
		Slot:     domain.SlotWeapon,
		Rarity:   domain.RarityCommon,
		Level:    level,
		MainStat: &domain.Stat{Type: domain.StatAttack, Value: 12},
	}
}

func TestService_Enhance_Success(t *testing.T) {
	f := newFixture(t, rng.Constant(0.5), false)
	seedCharacter(f.store, 1000, "sword")
	f.store.PutItem(weapon("sword", 0))
	f.pub.On("PublishWithRetry", mock.Anything, ofType(event.ItemEnhanced)).Return()

	res, err := f.svc.Enhance(context.Background(), "char-1", "sword")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.NewLevel)
	assert.Equal(t, int64(50), res.Cost)
	assert.Equal(t, 1, f.store.Item("sword").Level)
	assert.Equal(t, int64(950), f.store.Character("char-1").Balance)
	assert.Equal(t, 1, f.store.Commits)
	f.pub.AssertExpectations(t)
}

func TestService_Enhance_FailureStillCharges(t *testing.T) {
	f := newFixture(t, rng.Constant(0.99), false)
	seedCharacter(f.store, 1000, "sword")
	f.store.PutItem(weapon("sword", 11))
	f.pub.On("PublishWithRetry", mock.Anything, ofType(event.ItemEnhanced)).Return()

	res, err := f.svc.Enhance(context.Background(), "char-1", "sword")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, 11, f.store.Item("sword").Level)
	assert.Equal(t, int64(400), f.store.Character("char-1").Balance)
}

func TestService_Enhance_Refused(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		balance int64
		wantErr error
	}{
		{"max level", domain.MaxItemLevel, 100000, domain.ErrMaxLevel},
		{"broke", 0, 10, domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, rng.Constant(0), false)
			seedCharacter(f.store, tt.balance, "sword")
			f.store.PutItem(weapon("sword", tt.level))

			res, err := f.svc.Enhance(context.Background(), "char-1", "sword")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			require.NotNil(t, res)
			assert.False(t, res.Attempted())

			assert.Equal(t, tt.balance, f.store.Character("char-1").Balance)
			assert.Equal(t, tt.level, f.store.Item("sword").Level)
			assert.Equal(t, 0, f.store.Commits)
			f.pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Enhance_NotOwned(t *testing.T) {
	f := newFixture(t, rng.Constant(0), false)
	seedCharacter(f.store, 1000)
	f.store.PutItem(weapon("sword", 0))

	_, err := f.svc.Enhance(context.Background(), "char-1", "sword")
	assert.True(t, errors.Is(err, domain.ErrItemNotOwned))
}

func TestService_Enhance_InvalidatesCache(t *testing.T) {
	f := newFixture(t, rng.Constant(0), true)
	seedCharacter(f.store, 1000, "sword")
	f.store.PutItem(weapon("sword", 0))
	f.pub.On("PublishWithRetry", mock.Anything, mock.Anything).Return()
	ctx := context.Background()

	before, err := f.svc.GetItem(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, 0, before.Level)

	_, err = f.svc.Enhance(ctx, "char-1", "sword")
	require.NoError(t, err)

	after, err := f.svc.GetItem(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, 1, after.Level)
}

func TestService_Enhance_SerializesPerCharacter(t *testing.T) {
	f := newFixture(t, rng.Constant(0), false)
	seedCharacter(f.store, 10000, "sword")
	f.store.PutItem(weapon("sword", 0))
	f.pub.On("PublishWithRetry", mock.Anything, mock.Anything).Return()

	const attempts = 10
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Enhance(context.Background(), "char-1", "sword")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// levels 0..9 cost 50*(1+2+...+10)
	assert.Equal(t, attempts, f.store.Item("sword").Level)
	assert.Equal(t, int64(10000-50*55), f.store.Character("char-1").Balance)
}

func TestService_Enhance_SharedItemKeepsEveryLevel(t *testing.T) {
	f := newFixture(t, rng.Constant(0), true)
	seedCharacter(f.store, 10000, "sword")
	other := domain.NewCharacter("char-2", "Brom", 10000)
	other.AddInventory("sword", 1)
	f.store.PutCharacter(other)
	f.store.PutItem(weapon("sword", 0))
	f.pub.On("PublishWithRetry", mock.Anything, mock.Anything).Return()

	const perOwner = 5
	var wg sync.WaitGroup
	for _, owner := range []string{"char-1", "char-2"} {
		for i := 0; i < perOwner; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.svc.Enhance(context.Background(), owner, "sword")
				assert.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	assert.Equal(t, 2*perOwner, f.store.Item("sword").Level)
	spent := 20000 - f.store.Character("char-1").Balance - f.store.Character("char-2").Balance
	assert.Equal(t, int64(50*55), spent)
}

func TestService_Enhance_IgnoresStaleCachedLevel(t *testing.T) {
	f := newFixture(t, rng.Constant(0), true)
	seedCharacter(f.store, 1000, "sword")
	f.store.PutItem(weapon("sword", 0))
	f.pub.On("PublishWithRetry", mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	cached, err := f.svc.GetItem(ctx, "sword")
	require.NoError(t, err)
	require.Equal(t, 0, cached.Level)

	// another process enhances the shared item behind the cache
	require.NoError(t, f.store.UpdateItemLevel(ctx, "sword", 3))

	res, err := f.svc.Enhance(ctx, "char-1", "sword")
	require.NoError(t, err)
	assert.Equal(t, 4, res.NewLevel)
	assert.Equal(t, EnhanceCost(domain.RarityCommon, 3), res.Cost)
	assert.Equal(t, 4, f.store.Item("sword").Level)
}

func TestService_EquipAndUnequip(t *testing.T) {
	f := newFixture(t, rng.Constant(0), false)
	seedCharacter(f.store, 0, "sword", "axe")
	f.store.PutItem(weapon("sword", 0))
	f.store.PutItem(weapon("axe", 0))
	ctx := context.Background()

	c, err := f.svc.Equip(ctx, "char-1", "sword")
	require.NoError(t, err)
	assert.Equal(t, "sword", c.Equipment[domain.SlotWeapon])
	assert.Equal(t, []domain.InventoryEntry{{ItemID: "axe", Quantity: 1}}, c.Inventory)

	// swapping returns the previous weapon to the bag
	c, err = f.svc.Equip(ctx, "char-1", "axe")
	require.NoError(t, err)
	assert.Equal(t, "axe", c.Equipment[domain.SlotWeapon])
	assert.Equal(t, []domain.InventoryEntry{{ItemID: "sword", Quantity: 1}}, c.Inventory)

	c, err = f.svc.Unequip(ctx, "char-1", domain.SlotWeapon)
	require.NoError(t, err)
	assert.Empty(t, c.Equipment)
	assert.Len(t, c.Inventory, 2)

	stored := f.store.Character("char-1")
	assert.Empty(t, stored.Equipment)
}

func TestService_EquipErrors(t *testing.T) {
	f := newFixture(t, rng.Constant(0), false)
	seedCharacter(f.store, 0)
	f.store.PutItem(weapon("sword", 0))
	ctx := context.Background()

	_, err := f.svc.Equip(ctx, "char-1", "sword")
	assert.True(t, errors.Is(err, domain.ErrItemNotOwned))

	_, err = f.svc.Equip(ctx, "char-1", "ghost")
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))

	_, err = f.svc.Unequip(ctx, "char-1", domain.SlotHead)
	assert.True(t, errors.Is(err, domain.ErrSlotEmpty))

	_, err = f.svc.Unequip(ctx, "char-1", "belt")
	assert.True(t, errors.Is(err, domain.ErrInvalidSlot))
}

func TestService_GenerateFor(t *testing.T) {
	f := newFixture(t, rng.New(3), false)
	seedCharacter(f.store, 0)
	f.pub.On("PublishWithRetry", mock.Anything, ofType(event.ItemGenerated)).Return()

	item, err := f.svc.GenerateFor(context.Background(), "char-1", domain.SlotHands, domain.RarityRare, "thundering_fury")
	require.NoError(t, err)

	stored := f.store.Item(item.ID)
	require.NotNil(t, stored)
	assert.Equal(t, domain.ElementElectro, stored.Element)
	assert.True(t, f.store.Character("char-1").HasItem(item.ID))
	f.pub.AssertExpectations(t)
}

func TestService_GenerateFor_UnknownCharacter(t *testing.T) {
	f := newFixture(t, rng.New(3), false)

	_, err := f.svc.GenerateFor(context.Background(), "nobody", domain.SlotHands, domain.RarityRare, "")
	assert.True(t, errors.Is(err, domain.ErrCharacterNotFound))
	f.pub.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything)
}
