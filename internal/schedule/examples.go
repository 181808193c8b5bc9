package schedule

import (
	"time"
)

// DefaultTitle names the single sheet of the example workbook
const DefaultTitle = "時程規劃"

// ExampleRecords returns the embedded example schedule: two environments,
// each with two batches of the same three preparation tasks
func ExampleRecords() []Record {
	return []Record{
		{
			FieldEnvironment:         Text("資轉驗證環境"),
			FieldPurpose:             Text("資料轉換驗證與測試"),
			FieldBatch:               Text("第一梯次"),
			FieldStartDate:           Date(2024, time.January, 15),
			FieldEndDate:             Date(2024, time.January, 20),
			FieldTask:                Text("IT前置準備之1.永豐BSP確認接收日"),
			FieldStatus:              Text("進行中"),
			FieldIntermediateFile:    Text("BSP_20240115.xlsx"),
			FieldDataBaseDate:        Date(2024, time.January, 10),
			FieldKingdomFreezeDate:   Date(2024, time.January, 12),
			FieldKingdomTransferDate: Date(2024, time.January, 14),
			FieldRemark:              Text("需確認資料完整性"),
		},
		{
			FieldEnvironment:         Text("資轉驗證環境"),
			FieldPurpose:             Text("資料轉換驗證與測試"),
			FieldBatch:               Text("第一梯次"),
			FieldStartDate:           Date(2024, time.January, 15),
			FieldEndDate:             Date(2024, time.January, 20),
			FieldTask:                Text("IT前置準備之2.永豐BSP DB倒檔"),
			FieldStatus:              Text("進行中"),
			FieldIntermediateFile:    Text("BSP_DB_20240115.dump"),
			FieldDataBaseDate:        Date(2024, time.January, 10),
			FieldKingdomFreezeDate:   Date(2024, time.January, 12),
			FieldKingdomTransferDate: Date(2024, time.January, 14),
			FieldRemark:              Text("需確認DB版本"),
		},
		{
			FieldEnvironment:         Text("資轉驗證環境"),
			FieldPurpose:             Text("資料轉換驗證與測試"),
			FieldBatch:               Text("第一梯次"),
			FieldStartDate:           Date(2024, time.January, 15),
			FieldEndDate:             Date(2024, time.January, 20),
			FieldTask:                Text("IT前置準備之3.永豐BSP AP確認"),
			FieldStatus:              Text("進行中"),
			FieldIntermediateFile:    Text("BSP_AP_20240115.zip"),
			FieldDataBaseDate:        Date(2024, time.January, 10),
			FieldKingdomFreezeDate:   Date(2024, time.January, 12),
			FieldKingdomTransferDate: Date(2024, time.January, 14),
			FieldRemark:              Text("AP版本需與DB一致"),
		},
		{
			FieldEnvironment:         Text("資轉驗證環境"),
			FieldPurpose:             Text("資料轉換驗證與測試"),
			FieldBatch:               Text("第二梯次"),
			FieldStartDate:           Date(2024, time.January, 22),
			FieldEndDate:             Date(2024, time.January, 27),
			FieldTask:                Text("IT前置準備之1.永豐BSP確認接收日"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_20240122.xlsx"),
			FieldDataBaseDate:        Date(2024, time.January, 18),
			FieldKingdomFreezeDate:   Date(2024, time.January, 20),
			FieldKingdomTransferDate: Date(2024, time.January, 21),
			FieldRemark:              Text("第二梯次資料"),
		},
		{
			FieldEnvironment:         Text("資轉驗證環境"),
			FieldPurpose:             Text("資料轉換驗證與測試"),
			FieldBatch:               Text("第二梯次"),
			FieldStartDate:           Date(2024, time.January, 22),
			FieldEndDate:             Date(2024, time.January, 27),
			FieldTask:                Text("IT前置準備之2.永豐BSP DB倒檔"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_DB_20240122.dump"),
			FieldDataBaseDate:        Date(2024, time.January, 18),
			FieldKingdomFreezeDate:   Date(2024, time.January, 20),
			FieldKingdomTransferDate: Date(2024, time.January, 21),
			FieldRemark:              Text("需確認DB版本一致性"),
		},
		{
			FieldEnvironment:         Text("資轉驗證環境"),
			FieldPurpose:             Text("資料轉換驗證與測試"),
			FieldBatch:               Text("第二梯次"),
			FieldStartDate:           Date(2024, time.January, 22),
			FieldEndDate:             Date(2024, time.January, 27),
			FieldTask:                Text("IT前置準備之3.永豐BSP AP確認"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_AP_20240122.zip"),
			FieldDataBaseDate:        Date(2024, time.January, 18),
			FieldKingdomFreezeDate:   Date(2024, time.January, 20),
			FieldKingdomTransferDate: Date(2024, time.January, 21),
			FieldRemark:              Text("AP需與第一梯次版本一致"),
		},
		{
			FieldEnvironment:         Text("平測切轉環境"),
			FieldPurpose:             Text("平行測試與系統切換驗證"),
			FieldBatch:               Text("第一梯次"),
			FieldStartDate:           Date(2024, time.February, 1),
			FieldEndDate:             Date(2024, time.February, 5),
			FieldTask:                Text("IT前置準備之1.永豐BSP確認接收日"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_20240201.xlsx"),
			FieldDataBaseDate:        Date(2024, time.January, 28),
			FieldKingdomFreezeDate:   Date(2024, time.January, 30),
			FieldKingdomTransferDate: Date(2024, time.January, 31),
			FieldRemark:              Text("平測環境首次資料"),
		},
		{
			FieldEnvironment:         Text("平測切轉環境"),
			FieldPurpose:             Text("平行測試與系統切換驗證"),
			FieldBatch:               Text("第一梯次"),
			FieldStartDate:           Date(2024, time.February, 1),
			FieldEndDate:             Date(2024, time.February, 5),
			FieldTask:                Text("IT前置準備之2.永豐BSP DB倒檔"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_DB_20240201.dump"),
			FieldDataBaseDate:        Date(2024, time.January, 28),
			FieldKingdomFreezeDate:   Date(2024, time.January, 30),
			FieldKingdomTransferDate: Date(2024, time.January, 31),
			FieldRemark:              Text("DB需完整備份"),
		},
		{
			FieldEnvironment:         Text("平測切轉環境"),
			FieldPurpose:             Text("平行測試與系統切換驗證"),
			FieldBatch:               Text("第一梯次"),
			FieldStartDate:           Date(2024, time.February, 1),
			FieldEndDate:             Date(2024, time.February, 5),
			FieldTask:                Text("IT前置準備之3.永豐BSP AP確認"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_AP_20240201.zip"),
			FieldDataBaseDate:        Date(2024, time.January, 28),
			FieldKingdomFreezeDate:   Date(2024, time.January, 30),
			FieldKingdomTransferDate: Date(2024, time.January, 31),
			FieldRemark:              Text("AP版本需與資轉環境一致"),
		},
		{
			FieldEnvironment:         Text("平測切轉環境"),
			FieldPurpose:             Text("平行測試與系統切換驗證"),
			FieldBatch:               Text("第二梯次"),
			FieldStartDate:           Date(2024, time.February, 8),
			FieldEndDate:             Date(2024, time.February, 12),
			FieldTask:                Text("IT前置準備之1.永豐BSP確認接收日"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_20240208.xlsx"),
			FieldDataBaseDate:        Date(2024, time.February, 5),
			FieldKingdomFreezeDate:   Date(2024, time.February, 7),
			FieldKingdomTransferDate: Date(2024, time.February, 7),
			FieldRemark:              Text("第二梯次資料更新"),
		},
		{
			FieldEnvironment:         Text("平測切轉環境"),
			FieldPurpose:             Text("平行測試與系統切換驗證"),
			FieldBatch:               Text("第二梯次"),
			FieldStartDate:           Date(2024, time.February, 8),
			FieldEndDate:             Date(2024, time.February, 12),
			FieldTask:                Text("IT前置準備之2.永豐BSP DB倒檔"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_DB_20240208.dump"),
			FieldDataBaseDate:        Date(2024, time.February, 5),
			FieldKingdomFreezeDate:   Date(2024, time.February, 7),
			FieldKingdomTransferDate: Date(2024, time.February, 7),
			FieldRemark:              Text("DB增量更新"),
		},
		{
			FieldEnvironment:         Text("平測切轉環境"),
			FieldPurpose:             Text("平行測試與系統切換驗證"),
			FieldBatch:               Text("第二梯次"),
			FieldStartDate:           Date(2024, time.February, 8),
			FieldEndDate:             Date(2024, time.February, 12),
			FieldTask:                Text("IT前置準備之3.永豐BSP AP確認"),
			FieldStatus:              Text("待開始"),
			FieldIntermediateFile:    Text("BSP_AP_20240208.zip"),
			FieldDataBaseDate:        Date(2024, time.February, 5),
			FieldKingdomFreezeDate:   Date(2024, time.February, 7),
			FieldKingdomTransferDate: Date(2024, time.February, 7),
			FieldRemark:              Text("AP版本確認"),
		},
	}
}

// ExampleTable is the example schedule laid out on the standard fields
func ExampleTable() Table {
	return Table{
		Title:   DefaultTitle,
		Fields:  Fields(),
		Records: ExampleRecords(),
	}
}
