package usecase_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"item-stats-service/internal/dashboard/core/domain"
	"item-stats-service/internal/dashboard/core/usecase"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSummaryClient answers from a path -> response table and records calls.
type fakeSummaryClient struct {
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	body string
	err  error
}

func (f *fakeSummaryClient) Fetch(ctx context.Context, path string) ([]byte, error) {
	f.calls = append(f.calls, path)
	r, ok := f.responses[path]
	if !ok {
		return nil, fmt.Errorf("%w: no route for %s", domain.ErrFetchFailure, path)
	}
	if r.err != nil {
		return nil, r.err
	}
	return []byte(r.body), nil
}

func allSucceed() map[string]fakeResponse {
	return map[string]fakeResponse{
		usecase.CompletedCountPath:           {body: `42`},
		usecase.AveragePerUserPath:           {body: `{"average_per_user": 7.5}`},
		usecase.AverageDurationCompletedPath: {body: `13.2`},
	}
}

func newObservedUseCase(client *fakeSummaryClient) (*usecase.LoadSnapshotUseCase, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return usecase.NewLoadSnapshotUseCase(client, zap.New(core)), logs
}

var fetchErr = fmt.Errorf("%w: connection refused", domain.ErrFetchFailure)

// ------------------------------------------------------------
// ALL SUCCEED
// ------------------------------------------------------------

func TestLoadSnapshot_AllSucceed(t *testing.T) {
	client := &fakeSummaryClient{responses: allSucceed()}
	uc, logs := newObservedUseCase(client)

	snap := uc.Execute(context.Background(), nil)

	want := []string{
		"Completed Users Count: 42",
		"Average Duration: 7.5",
		"Average Duration Completed: 13.2",
	}
	if got := snap.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !snap.Complete() {
		t.Fatal("expected complete snapshot")
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no logs, got %d", logs.Len())
	}
}

// ------------------------------------------------------------
// ORDER + INCREMENTAL UPDATES
// ------------------------------------------------------------

func TestLoadSnapshot_SequentialOrderAndIncrementalUpdates(t *testing.T) {
	client := &fakeSummaryClient{responses: allSucceed()}
	uc, _ := newObservedUseCase(client)

	var updates []domain.Snapshot
	uc.Execute(context.Background(), func(s domain.Snapshot) {
		updates = append(updates, s)
	})

	wantCalls := []string{
		usecase.CompletedCountPath,
		usecase.AveragePerUserPath,
		usecase.AverageDurationCompletedPath,
	}
	if !reflect.DeepEqual(client.calls, wantCalls) {
		t.Fatalf("expected calls %v, got %v", wantCalls, client.calls)
	}

	if len(updates) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(updates))
	}

	// first update: only the first field resolved
	first := updates[0].Lines()
	if first[0] != "Completed Users Count: 42" || first[1] != domain.LoadingText || first[2] != domain.LoadingText {
		t.Fatalf("unexpected first update: %v", first)
	}

	second := updates[1].Lines()
	if second[1] != "Average Duration: 7.5" || second[2] != domain.LoadingText {
		t.Fatalf("unexpected second update: %v", second)
	}

	if !updates[2].Complete() {
		t.Fatalf("expected last update to be complete")
	}
}

// ------------------------------------------------------------
// FIRST CALL FAILURE
// ------------------------------------------------------------

func TestLoadSnapshot_FirstCallFailure(t *testing.T) {
	responses := allSucceed()
	responses[usecase.CompletedCountPath] = fakeResponse{err: fetchErr}

	client := &fakeSummaryClient{responses: responses}
	uc, logs := newObservedUseCase(client)

	updated := false
	snap := uc.Execute(context.Background(), func(domain.Snapshot) { updated = true })

	for i, line := range snap.Lines() {
		if line != domain.LoadingText {
			t.Errorf("line %d: expected %q, got %q", i, domain.LoadingText, line)
		}
	}
	if updated {
		t.Error("expected no updates")
	}
	if len(client.calls) != 1 {
		t.Errorf("expected later calls to be skipped, got %v", client.calls)
	}

	errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel)
	if errorLogs.Len() != 1 {
		t.Fatalf("expected exactly 1 error log, got %d", errorLogs.Len())
	}
	if errorLogs.All()[0].ContextMap()["path"] != usecase.CompletedCountPath {
		t.Errorf("expected failing path in log, got %v", errorLogs.All()[0].ContextMap())
	}
}

// ------------------------------------------------------------
// THIRD CALL FAILURE
// ------------------------------------------------------------

func TestLoadSnapshot_ThirdCallFailure(t *testing.T) {
	responses := allSucceed()
	responses[usecase.AverageDurationCompletedPath] = fakeResponse{err: fetchErr}

	client := &fakeSummaryClient{responses: responses}
	uc, logs := newObservedUseCase(client)

	snap := uc.Execute(context.Background(), nil)

	want := []string{
		"Completed Users Count: 42",
		"Average Duration: 7.5",
		domain.LoadingText,
	}
	if got := snap.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if logs.FilterLevelExact(zapcore.ErrorLevel).Len() != 1 {
		t.Fatalf("expected exactly 1 error log, got %d", logs.Len())
	}
}

// ------------------------------------------------------------
// MALFORMED BODY STOPS THE SEQUENCE
// ------------------------------------------------------------

func TestLoadSnapshot_MalformedBodyIsFetchFailure(t *testing.T) {
	responses := allSucceed()
	responses[usecase.AveragePerUserPath] = fakeResponse{body: `{"average_per_user":`}

	client := &fakeSummaryClient{responses: responses}
	uc, logs := newObservedUseCase(client)

	snap := uc.Execute(context.Background(), nil)

	if !snap.CompletedCount.IsReady() {
		t.Error("expected first field to resolve")
	}
	if snap.AverageDurationPerUser.IsReady() || snap.AverageDurationCompleted.IsReady() {
		t.Error("expected later fields to stay loading")
	}
	if len(client.calls) != 2 {
		t.Errorf("expected 2 calls, got %v", client.calls)
	}

	entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 error log, got %d", len(entries))
	}
	loggedErr, ok := entries[0].ContextMap()["error"].(string)
	if !ok || loggedErr == "" {
		t.Fatalf("expected error field in log, got %v", entries[0].ContextMap())
	}
}

// ------------------------------------------------------------
// NULL VALUE KEEPS LOADING, SEQUENCE CONTINUES
// ------------------------------------------------------------

func TestLoadSnapshot_NullValueStaysLoading(t *testing.T) {
	responses := allSucceed()
	responses[usecase.AverageDurationCompletedPath] = fakeResponse{body: `null`}
	responses[usecase.CompletedCountPath] = fakeResponse{body: `null`}

	client := &fakeSummaryClient{responses: responses}
	uc, logs := newObservedUseCase(client)

	var updates int
	snap := uc.Execute(context.Background(), func(domain.Snapshot) { updates++ })

	if snap.CompletedCount.IsReady() || snap.AverageDurationCompleted.IsReady() {
		t.Fatal("expected null fields to stay loading")
	}
	if !snap.AverageDurationPerUser.IsReady() {
		t.Fatal("expected middle field to resolve")
	}
	if len(client.calls) != 3 {
		t.Fatalf("expected all 3 calls, got %v", client.calls)
	}
	if updates != 1 {
		t.Fatalf("expected 1 update, got %d", updates)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no logs, got %d", logs.Len())
	}
}

// ------------------------------------------------------------
// EXTRACTION: only nested average_per_user is used
// ------------------------------------------------------------

func TestLoadSnapshot_MissingNestedFieldIsEmpty(t *testing.T) {
	responses := allSucceed()
	responses[usecase.AveragePerUserPath] = fakeResponse{body: `{"avg": 7.5}`}

	client := &fakeSummaryClient{responses: responses}
	uc, _ := newObservedUseCase(client)

	snap := uc.Execute(context.Background(), nil)

	if !snap.AverageDurationPerUser.IsReady() {
		t.Fatal("expected field to be set")
	}
	if snap.AverageDurationPerUser.Value != "" {
		t.Fatalf("expected empty value, got %q", snap.AverageDurationPerUser.Value)
	}
	if got := snap.Lines()[1]; got != "Average Duration: " {
		t.Fatalf("unexpected line %q", got)
	}
}

// ------------------------------------------------------------
// IDEMPOTENCE: two activations, two full sequences
// ------------------------------------------------------------

func TestLoadSnapshot_TwoActivationsAreIndependent(t *testing.T) {
	client := &fakeSummaryClient{responses: allSucceed()}
	uc, _ := newObservedUseCase(client)

	first := uc.Execute(context.Background(), nil)

	client.responses[usecase.CompletedCountPath] = fakeResponse{body: `43`}
	second := uc.Execute(context.Background(), nil)

	if len(client.calls) != 6 {
		t.Fatalf("expected 6 calls, got %d", len(client.calls))
	}
	if first.CompletedCount.Value != "42" {
		t.Errorf("expected first activation value 42, got %q", first.CompletedCount.Value)
	}
	if second.CompletedCount.Value != "43" {
		t.Errorf("expected second activation value 43, got %q", second.CompletedCount.Value)
	}
}

func TestLoadSnapshot_NilLoggerStillDegradesSilently(t *testing.T) {
	client := &fakeSummaryClient{responses: map[string]fakeResponse{}}
	uc := usecase.NewLoadSnapshotUseCase(client, nil)

	snap := uc.Execute(context.Background(), nil)
	for i, line := range snap.Lines() {
		if line != domain.LoadingText {
			t.Errorf("line %d: expected %q, got %q", i, domain.LoadingText, line)
		}
	}
}
