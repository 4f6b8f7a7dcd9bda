package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/domain"
)

var testTime = time.Date(2018, 9, 20, 10, 0, 0, 0, time.UTC)

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("err = nil, want validation error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	td := New("買い物", "豆腐、りんご")

	if td.Done {
		t.Error("Done = true, want false by default")
	}
	if td.ID != "" {
		t.Errorf("ID = %q, want empty until the repository assigns one", td.ID)
	}
	if td.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, want >= %v", td.CreatedAt, before)
	}
	if !td.UpdatedAt.Equal(td.CreatedAt) {
		t.Errorf("UpdatedAt = %v, want CreatedAt %v", td.UpdatedAt, td.CreatedAt)
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	updated := testTime.Add(time.Hour)
	td := New("散歩", "", WithDone(true), WithCreatedAt(testTime), WithUpdatedAt(updated))

	if !td.Done {
		t.Error("Done = false, want true from WithDone")
	}
	if !td.CreatedAt.Equal(testTime) {
		t.Errorf("CreatedAt = %v, want %v", td.CreatedAt, testTime)
	}
	if !td.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, updated)
	}
}

func TestNew_UpdatedAtFollowsCreatedAt(t *testing.T) {
	t.Parallel()

	td := New("散歩", "", WithCreatedAt(testTime))

	if !td.UpdatedAt.Equal(testTime) {
		t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, testTime)
	}
}

func TestTodo_Update_OverwritesEveryField(t *testing.T) {
	t.Parallel()

	td := New("買い物", "豆腐", WithDone(true), WithCreatedAt(testTime))
	later := testTime.Add(time.Minute)

	td.Update("ジョギング", "1日5km", false, later)

	if td.Title != "ジョギング" || td.Content != "1日5km" {
		t.Errorf("Title/Content = %q/%q, want replaced values", td.Title, td.Content)
	}
	if td.Done {
		t.Error("Done = true, want overwritten with false")
	}
	if !td.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", td.UpdatedAt, later)
	}
	if !td.CreatedAt.Equal(testTime) {
		t.Errorf("CreatedAt = %v, want unchanged %v", td.CreatedAt, testTime)
	}
}

func TestTodo_Complete(t *testing.T) {
	t.Parallel()

	td := New("買い物", "豆腐", WithCreatedAt(testTime))
	td.Complete()

	if !td.Done {
		t.Error("Done = false after Complete, want true")
	}
	if !td.UpdatedAt.Equal(testTime) {
		t.Errorf("UpdatedAt = %v, want untouched %v", td.UpdatedAt, testTime)
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Todo)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid todo passes",
			modify:  func(_ *Todo) {},
			wantErr: false,
		},
		{
			name:    "empty content passes",
			modify:  func(td *Todo) { td.Content = "" },
			wantErr: false,
		},
		{
			name:      "empty title fails",
			modify:    func(td *Todo) { td.Title = "" },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace-only title fails",
			modify:    func(td *Todo) { td.Title = " \t" },
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "updatedAt before createdAt fails",
			modify:    func(td *Todo) { td.UpdatedAt = td.CreatedAt.Add(-time.Second) },
			wantErr:   true,
			wantField: "updatedAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td := New("買い物", "豆腐", WithCreatedAt(testTime))
			tt.modify(&td)
			err := td.Validate()

			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
