package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleRecordsCoverEveryField(t *testing.T) {
	table := ExampleTable()
	require.Len(t, table.Records, 12)
	require.Len(t, table.Fields, 12)

	for i, r := range table.Records {
		for _, f := range table.Fields {
			v, ok := r[f.Key]
			require.True(t, ok, "record %d lacks %s", i, f.Key)
			assert.Equal(t, f.Kind == KindDate, v.IsDate(), "record %d field %s", i, f.Key)
		}
	}
}

func TestHeadersFollowFieldOrder(t *testing.T) {
	assert.Equal(t, []string{
		"環境名稱", "環境目的", "執行梯次", "驗證起日", "驗證迄日", "工作內容",
		"狀態", "中介檔", "資料基準日", "京城封版日", "京城傳送中介檔日", "備注說明",
	}, ExampleTable().Headers())
}

func TestRowFillsMissingFieldsWithEmptyText(t *testing.T) {
	table := Table{Fields: Fields()}
	row := table.Row(Record{FieldTask: Text("倒檔")})

	require.Len(t, row, 12)
	assert.Equal(t, "倒檔", row[5].String())
	for i, v := range row {
		if i == 5 {
			continue
		}
		assert.True(t, v.IsEmpty(), "column %d", i)
		assert.Equal(t, "", v.CellValue())
	}
}

func TestValueRendering(t *testing.T) {
	d := Date(2024, time.February, 7)
	assert.Equal(t, "2024-02-07", d.String())
	assert.Equal(t, time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC), d.CellValue())

	local := time.Date(2024, 2, 7, 23, 30, 0, 0, time.FixedZone("TST", 8*3600))
	assert.Equal(t, d, DateOf(local))

	assert.Equal(t, "第一梯次", Text("第一梯次").String())
	assert.False(t, Text("x").IsDate())
}

func TestMatchHeadersExact(t *testing.T) {
	fields := Fields()
	headers := ExampleTable().Headers()

	matched := MatchHeaders(headers, fields)
	require.Len(t, matched, len(fields))
	for i, f := range fields {
		assert.Equal(t, i, matched[f.Key], f.Key)
	}
	assert.Empty(t, UnmatchedHeaders(headers, matched))
}

func TestMatchHeadersPartialAndFallback(t *testing.T) {
	headers := []string{"測試環境別", "Start Date (planned)", "任務說明", "", "Owner"}
	matched := MatchHeaders(headers, Fields())

	assert.Equal(t, 0, matched[FieldEnvironment])
	assert.Equal(t, 1, matched[FieldStartDate])
	assert.Equal(t, 2, matched[FieldTask])
	_, ok := matched[FieldRemark]
	assert.False(t, ok)
	assert.Equal(t, []string{"Owner"}, UnmatchedHeaders(headers, matched))
}

func TestMatchHeadersClaimsColumnOnce(t *testing.T) {
	headers := []string{"環境名稱", "環境"}
	matched := MatchHeaders(headers, Fields())
	assert.Equal(t, 0, matched[FieldEnvironment])
	for key, index := range matched {
		if key != FieldEnvironment {
			assert.NotEqual(t, 0, index, key)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"進行中":       StatusPreparing,
		"待開始":       StatusNotStarted,
		"User測試進行中": StatusVerifying,
		"已驗證":       StatusDone,
		"已完成":       StatusDone,
		"":          StatusNotStarted,
		"暫停":        StatusNotStarted,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeStatus(in), in)
	}
	assert.Less(t, StatusRank(StatusPreparing), StatusRank(StatusDone))
}

func TestCompleteFillsDefaults(t *testing.T) {
	_, ok := Complete(Record{FieldRemark: Text("only a remark")})
	assert.False(t, ok)

	r, ok := Complete(Record{FieldEnvironment: Text("平測切轉環境：平行測試"), FieldStatus: Text("測試中")})
	require.True(t, ok)
	assert.Equal(t, "平測切轉環境", r.Get(FieldEnvironment).String())
	assert.Equal(t, "平行測試", r.Get(FieldPurpose).String())
	assert.Equal(t, "平測切轉環境", r.Get(FieldTask).String())
	assert.Equal(t, StatusVerifying, r.Get(FieldStatus).String())

	r, ok = Complete(Record{FieldTask: Text("AP確認")})
	require.True(t, ok)
	assert.Equal(t, DefaultEnvironment, r.Get(FieldEnvironment).String())
	assert.Equal(t, DefaultPurpose, r.Get(FieldPurpose).String())
	assert.Equal(t, StatusNotStarted, r.Get(FieldStatus).String())
}

func TestGroupRecordsExample(t *testing.T) {
	groups := GroupRecords(ExampleRecords())
	require.Len(t, groups, 4)

	first := groups[0]
	assert.Equal(t, "資轉驗證環境", first.Environment)
	assert.Equal(t, "第一梯次", first.Batch)
	assert.Equal(t, "資料轉換驗證與測試", first.Purpose)
	assert.Len(t, first.Tasks, 3)
	assert.Equal(t, []string{StatusPreparing}, first.Statuses)
	assert.Equal(t, "2024-01-15", first.Start.Format(DateLayout))
	assert.Equal(t, "2024-01-20", first.End.Format(DateLayout))
	assert.Equal(t, 6, first.Days())

	last := groups[3]
	assert.Equal(t, "平測切轉環境", last.Environment)
	assert.Equal(t, "第二梯次", last.Batch)
	assert.Equal(t, []string{StatusNotStarted}, last.Statuses)
}

func TestGroupRecordsMissingEndAndBatch(t *testing.T) {
	groups := GroupRecords([]Record{
		{FieldEnvironment: Text("IT準備"), FieldStartDate: Date(2024, time.March, 3), FieldStatus: Text("完成")},
		{FieldEnvironment: Text("IT準備"), FieldStartDate: Date(2024, time.March, 1), FieldStatus: Text("進行中")},
		{FieldEnvironment: Text("IT準備")},
	})

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, DefaultBatch, g.Batch)
	assert.Equal(t, DefaultPurpose, g.Purpose)
	assert.Equal(t, "2024-03-01", g.Start.Format(DateLayout))
	assert.Equal(t, "2024-03-03", g.End.Format(DateLayout))
	assert.Equal(t, []string{StatusNotStarted, StatusPreparing, StatusDone}, g.Statuses)
}
