package generator

import (
	"strings"
	"testing"

	"issueforge/internal/catalog"
	"issueforge/internal/model"
)

func TestMultiValueWidths_SkipsEmptyApplication(t *testing.T) {
	t.Parallel()

	pb := catalog.Delivery()
	records := []model.ApplicationRecord{
		{Name: "Foo", Stack: "Go;React", Labels: "a"},
		{Name: "", Stack: "a;b;c;d;e", Labels: "x;y;z"}, // 无效记录不参与统计
		{Name: "Bar", Stack: "Rust", Labels: ""},
	}

	widths := MultiValueWidths(pb, records)
	if widths[model.ColStack] != 2 {
		t.Fatalf("stack width want 2, got %d", widths[model.ColStack])
	}
	if widths[model.ColLabels] != 1 {
		t.Fatalf("labels width want 1, got %d", widths[model.ColLabels])
	}
}

func TestMultiValueWidths_DefaultZero(t *testing.T) {
	t.Parallel()

	pb := catalog.Delivery()
	widths := MultiValueWidths(pb, []model.ApplicationRecord{{Name: "Foo"}})
	if widths[model.ColStack] != 0 || widths[model.ColLabels] != 0 {
		t.Fatalf("want zero widths, got %v", widths)
	}
}

func TestBuildHeader_RepeatedColumns(t *testing.T) {
	t.Parallel()

	pb := catalog.Delivery()
	header := BuildHeader(pb, map[string]int{model.ColStack: 3, model.ColLabels: 0})

	if len(header) != len(pb.BaseColumns)+3 {
		t.Fatalf("unexpected header len %d: %v", len(header), header)
	}
	for _, col := range header[len(pb.BaseColumns):] {
		if col != "Stack" {
			t.Fatalf("trailing columns must all be named Stack: %v", header)
		}
	}
	for _, col := range header {
		if col == "Label" {
			t.Fatalf("width 0 must not emit Label columns: %v", header)
		}
	}
}

// 单行 Foo / Stack=Go;React / Labels 为空，delivery 剧本
func TestGenerate_DeliveryScenario(t *testing.T) {
	t.Parallel()

	pb := catalog.Delivery()
	records := []model.ApplicationRecord{
		{Name: "Foo", Stack: "Go;React", Labels: ""},
	}

	result, err := Generate(pb, records, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Rows) != 5 {
		t.Fatalf("want 5 rows, got %d", len(result.Rows))
	}
	if len(result.Header) != len(pb.BaseColumns)+2 {
		t.Fatalf("unexpected header: %v", result.Header)
	}

	for i, row := range result.Rows {
		if len(row) != len(result.Header) {
			t.Fatalf("row %d width %d != header width %d", i, len(row), len(result.Header))
		}
		if row[3] != "Foo" {
			t.Fatalf("row %d application cell = %q", i, row[3])
		}
		n := len(row)
		if row[n-2] != "Go" || row[n-1] != "React" {
			t.Fatalf("row %d stack cells = %v", i, row[n-2:])
		}
		if row[0] == "" || !strings.Contains(row[1], "[Foo]") {
			t.Fatalf("row %d type/summary not resolved: %v", i, row[:2])
		}
		if row[len(pb.BaseColumns)-1] != DefaultPriority {
			t.Fatalf("row %d priority cell = %q", i, row[len(pb.BaseColumns)-1])
		}
	}
}

func TestExpand_RowCountPerApplication(t *testing.T) {
	t.Parallel()

	records := []model.ApplicationRecord{{Name: "A"}, {Name: "B"}, {Name: ""}}

	for _, tc := range []struct {
		pb   *model.Playbook
		want int
	}{
		{catalog.Delivery(), 10},
		{catalog.MVP(), 24},
	} {
		issues, err := Expand(tc.pb, records, Options{})
		if err != nil {
			t.Fatalf("Expand(%s): %v", tc.pb.Name, err)
		}
		if len(issues) != tc.want {
			t.Fatalf("%s: want %d issues, got %d", tc.pb.Name, tc.want, len(issues))
		}
	}
}

func TestExpand_MVPIdentifiers(t *testing.T) {
	t.Parallel()

	pb := catalog.MVP()
	records := []model.ApplicationRecord{{Name: "Alpha"}, {Name: "Beta"}}

	issues, err := Expand(pb, records, Options{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(issues) != 24 {
		t.Fatalf("want 24 issues, got %d", len(issues))
	}

	per := pb.IssuesPerApplication()
	for i := range issues {
		is := &issues[i]
		if is.ID == nil {
			t.Fatalf("issue %d missing id", i)
		}
		// 编号从 1 起全局严格递增，无空洞
		if *is.ID != i+1 {
			t.Fatalf("issue %d id = %d", i, *is.ID)
		}

		if is.Type == model.IssueEpic {
			if is.ParentID != nil {
				t.Fatalf("epic %d has parent %d", i, *is.ParentID)
			}
			continue
		}
		if is.ParentID == nil {
			t.Fatalf("issue %d missing parent", i)
		}
		// 父级必须是同一应用批次内先前产出的史诗
		batchStart := (i / per) * per
		parentIdx := *is.ParentID - 1
		if parentIdx < batchStart || parentIdx >= i {
			t.Fatalf("issue %d parent %d outside its batch", i, *is.ParentID)
		}
		if issues[parentIdx].Type != model.IssueEpic {
			t.Fatalf("issue %d parent %d is not an epic", i, *is.ParentID)
		}
	}
}

func TestExpand_DeliveryHasNoIdentifiers(t *testing.T) {
	t.Parallel()

	issues, err := Expand(catalog.Delivery(), []model.ApplicationRecord{{Name: "Foo"}}, Options{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	for i := range issues {
		if issues[i].ID != nil || issues[i].ParentID != nil {
			t.Fatalf("issue %d carries identifiers", i)
		}
	}
}

func TestExpand_EpicDescriptionSuffix(t *testing.T) {
	t.Parallel()

	pb := catalog.MVP()

	with, err := Expand(pb, []model.ApplicationRecord{{Name: "Foo", Description: "a todo app"}}, Options{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !strings.HasSuffix(with[0].Description, "\nInitial idea: a todo app") {
		t.Fatalf("discovery epic description missing suffix: %q", with[0].Description)
	}
	for i := 1; i < len(with); i++ {
		if strings.Contains(with[i].Description, "Initial idea:") {
			t.Fatalf("issue %d must not carry the suffix", i)
		}
	}

	without, err := Expand(pb, []model.ApplicationRecord{{Name: "Foo"}}, Options{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if strings.Contains(without[0].Description, "Initial idea:") {
		t.Fatalf("empty description must not add the suffix: %q", without[0].Description)
	}
}

func TestExpand_PriorityOption(t *testing.T) {
	t.Parallel()

	issues, err := Expand(catalog.Delivery(), []model.ApplicationRecord{{Name: "Foo"}}, Options{Priority: "High"})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	for i := range issues {
		if issues[i].Priority != "High" {
			t.Fatalf("issue %d priority = %q", i, issues[i].Priority)
		}
	}
}

func TestFlatten_MVPLayout(t *testing.T) {
	t.Parallel()

	pb := catalog.MVP()
	records := []model.ApplicationRecord{{Name: "Foo", Labels: "backend;cli"}}

	result, err := Generate(pb, records, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	epic := result.Rows[0]
	if epic[0] != "Epic" || epic[1] != "1" || epic[2] != "" {
		t.Fatalf("unexpected epic cells: %v", epic[:3])
	}
	task := result.Rows[1]
	if task[0] != "Task" || task[1] != "2" || task[2] != "1" {
		t.Fatalf("unexpected task cells: %v", task[:3])
	}

	// 末尾两列为 Label 重复列
	for i, row := range result.Rows {
		n := len(row)
		if n != len(result.Header) {
			t.Fatalf("row %d width mismatch", i)
		}
		if row[n-2] != "backend" || row[n-1] != "cli" {
			t.Fatalf("row %d label cells = %v", i, row[n-2:])
		}
	}
}

func TestFlatten_PadsToGlobalWidth(t *testing.T) {
	t.Parallel()

	pb := catalog.Delivery()
	records := []model.ApplicationRecord{
		{Name: "Small", Stack: "Go"},
		{Name: "Big", Stack: "Go;React;Postgres"},
	}

	result, err := Generate(pb, records, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Widths[model.ColStack] != 3 {
		t.Fatalf("want width 3, got %d", result.Widths[model.ColStack])
	}

	small := result.Rows[0]
	n := len(small)
	if small[n-3] != "Go" || small[n-2] != "" || small[n-1] != "" {
		t.Fatalf("short list must be padded with empties: %v", small[n-3:])
	}
	big := result.Rows[len(result.Rows)-1]
	if big[n-3] != "Go" || big[n-2] != "React" || big[n-1] != "Postgres" {
		t.Fatalf("long list must not be truncated: %v", big[n-3:])
	}
}

func TestFormatID(t *testing.T) {
	t.Parallel()

	id := 7
	if got := formatID(&id); got != "7" {
		t.Fatalf("formatID: %q", got)
	}
	if got := formatID(nil); got != "" {
		t.Fatalf("formatID(nil): %q", got)
	}
	zero := 0
	if got := formatID(&zero); got != "0" {
		t.Fatalf("identifier 0 must not be treated as absent: %q", got)
	}
}
