package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	controllermocks "synmut.dev/pkg/synmut/internal/controller/mocks"
	"synmut.dev/pkg/synmut/internal/domain"
	domainmocks "synmut.dev/pkg/synmut/internal/domain/mocks"
	"synmut.dev/pkg/synmut/internal/domain/mutagens"
	m "synmut.dev/pkg/synmut/internal/model"
)

func TestWorkflow_Run_Success(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockOrchestrator := domainmocks.NewMockOrchestrator(t)
	mockMutagen := domainmocks.NewMockMutagen(t)

	args := domain.RunArgs{Fixtures: newStore(), Files: []m.Path{"app.js"}}
	summary := m.NewSummary("abcd1234")
	summary.Record(m.Outcome{Fixture: m.Fixture{ID: "VALID_1", Kind: m.KindValid}, Matched: true})

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockOrchestrator.EXPECT().Run(mock.Anything, args).Return(summary, nil).Once()
	mockUI.EXPECT().DisplaySummary(mock.Anything, summary).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockUI, mockOrchestrator, mockMutagen)

	require.NoError(t, wf.Run(context.Background(), args))
}

func TestWorkflow_Run_DiscrepanciesAreNotErrors(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockOrchestrator := domainmocks.NewMockOrchestrator(t)

	summary := m.NewSummary("abcd1234")
	summary.Record(m.Outcome{Fixture: m.Fixture{ID: "INVALID_1", Kind: m.KindInvalid}, Classification: m.Undetected})

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockOrchestrator.EXPECT().Run(mock.Anything, mock.Anything).Return(summary, nil).Once()
	mockUI.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(s m.Summary) bool {
		return s.Discrepancies == 1
	})).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockUI, mockOrchestrator, domainmocks.NewMockMutagen(t))

	require.NoError(t, wf.Run(context.Background(), domain.RunArgs{Fixtures: newStore()}))
}

func TestWorkflow_Run_OrchestratorError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockOrchestrator := domainmocks.NewMockOrchestrator(t)
	boom := errors.New("tooling")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mockOrchestrator.EXPECT().Run(mock.Anything, mock.Anything).Return(m.NewSummary("abcd1234"), boom).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockUI, mockOrchestrator, domainmocks.NewMockMutagen(t))

	err := wf.Run(context.Background(), domain.RunArgs{Fixtures: newStore()})
	require.ErrorIs(t, err, boom)
	mockUI.AssertNotCalled(t, "DisplaySummary", mock.Anything, mock.Anything)
}

func TestWorkflow_Run_StartError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockOrchestrator := domainmocks.NewMockOrchestrator(t)
	boom := errors.New("no terminal")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(boom).Once()

	wf := domain.NewWorkflow(mockUI, mockOrchestrator, domainmocks.NewMockMutagen(t))

	require.ErrorIs(t, wf.Run(context.Background(), domain.RunArgs{Fixtures: newStore()}), boom)
}

func TestWorkflow_List(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockMutagen := domainmocks.NewMockMutagen(t)
	store := newStore()

	mutations := []m.Mutation{semicolonMutation}

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockMutagen.EXPECT().GenerateMutations(mock.Anything, store.Seeds, mock.Anything).Return(mutations, 0, nil).Once()
	mockUI.EXPECT().DisplayMutations(mock.Anything, mutations, 0).Return(nil).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockUI, domainmocks.NewMockOrchestrator(t), mockMutagen)

	err := wf.List(context.Background(), domain.ListArgs{
		Fixtures:  store,
		Operators: []mutagens.Operator{mutagens.RemoveSemicolons},
	})
	require.NoError(t, err)
}

func TestWorkflow_List_Errors(t *testing.T) {
	t.Run("missing fixtures", func(t *testing.T) {
		wf := domain.NewWorkflow(controllermocks.NewMockUI(t), domainmocks.NewMockOrchestrator(t), domainmocks.NewMockMutagen(t))

		require.Error(t, wf.List(context.Background(), domain.ListArgs{}))
	})

	t.Run("generate error", func(t *testing.T) {
		mockUI := controllermocks.NewMockUI(t)
		mockMutagen := domainmocks.NewMockMutagen(t)
		boom := errors.New("bad seed")

		mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		mockMutagen.EXPECT().GenerateMutations(mock.Anything, mock.Anything).Return(nil, 0, boom).Once()
		mockUI.EXPECT().Close(mock.Anything).Return().Once()

		wf := domain.NewWorkflow(mockUI, domainmocks.NewMockOrchestrator(t), mockMutagen)

		err := wf.List(context.Background(), domain.ListArgs{Fixtures: newStore()})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "generate mutations")
	})
}
