package factory

import (
	"time"

	"github.com/oridashi/scrollhunt/internal/dependencies/mocks"
	"github.com/oridashi/scrollhunt/internal/model"
	"github.com/oridashi/scrollhunt/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, "")

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// LoadTestStages loads a small stage set for testing, mirroring the seven
// stage types of a real event
func (t *TestApp) LoadTestStages() error {
	return t.StagesService.LoadStages(TestStages())
}

// TestStages returns seven stage definitions covering every stage type
func TestStages() []model.StageDefinition {
	return []model.StageDefinition{
		{ID: 1, Type: model.StageTypeCode, Answers: []string{"KONOHA"}},
		{ID: 2, Type: model.StageTypeCipher, Answers: []string{"VILLAGE"}},
		{ID: 3, Type: model.StageTypeMemory, Sequence: []int{0, 3, 1, 4, 2, 5}, AccessCode: "ANBU"},
		{ID: 4, Type: model.StageTypeCode, Answers: []string{"SHARINGAN"}},
		{ID: 5, Type: model.StageTypePuzzle},
		{ID: 6, Type: model.StageTypeRiddle, Answers: []string{"HASHIRAMA"}},
		{ID: 7, Type: model.StageTypeFinal},
	}
}
