package schedule

const (
	FieldEnvironment         = "environment"
	FieldPurpose             = "purpose"
	FieldBatch               = "batch"
	FieldStartDate           = "startDate"
	FieldEndDate             = "endDate"
	FieldTask                = "task"
	FieldStatus              = "status"
	FieldIntermediateFile    = "intermediateFile"
	FieldDataBaseDate        = "dataBaseDate"
	FieldKingdomFreezeDate   = "kingdomFreezeDate"
	FieldKingdomTransferDate = "kingdomTransferDate"
	FieldRemark              = "remark"
)

// Fields returns the schedule columns in sheet order. Aliases are ordered by
// match priority and are used when reading a workbook back.
func Fields() []Field {
	return []Field{
		{Key: FieldEnvironment, Header: "環境名稱", Kind: KindText, Width: 20,
			Aliases: []string{"環境名稱", "環境名", "環境", "env", "environment", "environment name"}},
		{Key: FieldPurpose, Header: "環境目的", Kind: KindText, Width: 25,
			Aliases: []string{"環境目的", "目的", "用途", "purpose", "goal", "環境用途"}},
		{Key: FieldBatch, Header: "執行梯次", Kind: KindText, Width: 15,
			Aliases: []string{"執行梯次", "梯次", "批次", "batch", "phase", "執行批次", "階段"}},
		{Key: FieldStartDate, Header: "驗證起日", Kind: KindDate, Width: 15,
			Aliases: []string{"驗證起日", "開始日期", "開始", "起始日期", "開始時間", "start", "start date", "startdate", "起日", "驗證開始日"}},
		{Key: FieldEndDate, Header: "驗證迄日", Kind: KindDate, Width: 15,
			Aliases: []string{"驗證迄日", "結束日期", "結束", "完成日期", "結束時間", "end", "end date", "enddate", "迄日", "驗證結束日", "finish"}},
		{Key: FieldTask, Header: "工作內容", Kind: KindText, Width: 40,
			Aliases: []string{"工作內容", "工作", "任務", "工作項目", "內容", "task", "work", "item", "項目", "工作項"}},
		{Key: FieldStatus, Header: "狀態", Kind: KindText, Width: 12,
			Aliases: []string{"狀態", "進度", "完成狀態", "status", "progress", "任務狀態", "工作狀態"}},
		{Key: FieldIntermediateFile, Header: "中介檔", Kind: KindText, Width: 25,
			Aliases: []string{"中介檔", "中介檔案", "intermediate", "intermediate file", "中介檔名稱", "file"}},
		{Key: FieldDataBaseDate, Header: "資料基準日", Kind: KindDate, Width: 15,
			Aliases: []string{"資料基準日", "基準日", "data base date", "data base", "資料基準日期", "基準日期"}},
		{Key: FieldKingdomFreezeDate, Header: "京城封版日", Kind: KindDate, Width: 15,
			Aliases: []string{"京城封版日", "封版日", "freeze date", "freeze", "封版日期", "京城封版日期"}},
		{Key: FieldKingdomTransferDate, Header: "京城傳送中介檔日", Kind: KindDate, Width: 20,
			Aliases: []string{"京城傳送中介檔日", "傳送中介檔日", "傳送日", "transfer date", "transfer", "傳送日期", "京城傳送日期"}},
		{Key: FieldRemark, Header: "備注說明", Kind: KindText, Width: 30,
			Aliases: []string{"備注說明", "備註說明", "備注", "備註", "說明", "remark", "note", "comment", "備註欄", "備注欄"}},
	}
}

// FieldByKey looks a field up by its key
func FieldByKey(fields []Field, key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
