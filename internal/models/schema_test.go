package models

import "testing"

func TestSchemaRender(t *testing.T) {
	schema := Schema{
		{
			Name: "departments",
			Columns: []Column{
				{Name: "department_id", Type: "INTEGER", PrimaryKey: true},
				{Name: "department_name", Type: "TEXT", NotNull: true},
				{Name: "location", Type: "TEXT"},
			},
		},
		{
			Name: "employees",
			Columns: []Column{
				{Name: "employee_id", Type: "INTEGER", PrimaryKey: true, NotNull: true},
			},
		},
	}

	want := `Table: departments
    - department_id INTEGER (PRIMARY KEY)
    - department_name TEXT (NOT NULL)
    - location TEXT

Table: employees
    - employee_id INTEGER (PRIMARY KEY, NOT NULL)`

	if got := schema.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestSchemaTables(t *testing.T) {
	schema := Schema{{Name: "a"}, {Name: "b"}}
	got := schema.Tables()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Tables() = %v", got)
	}
}

func TestNewAnswerRecord(t *testing.T) {
	record := NewAnswerRecord("who?")

	if record.Question != "who?" {
		t.Errorf("question = %q", record.Question)
	}
	if record.CreatedAt.IsZero() {
		t.Error("created-at not set")
	}
	if record.Failed() {
		t.Error("fresh record should not be failed")
	}

	record.Err = "boom"
	if !record.Failed() {
		t.Error("record with error should be failed")
	}
}
