package main

import (
	"fmt"
	"log"
	"scheduleSheet/internal/excel"
	"scheduleSheet/internal/schedule"
)

func main() {

	outputFile := "resource/範例_藍圖之對應時程環境規劃.xlsx"
	table := schedule.ExampleTable()

	err := excel.GenerateFile(outputFile, table, excel.DefaultStyle())
	if err != nil {
		log.Fatal("Error creating example workbook:", err)
	}

	fmt.Printf("✓ Example workbook created: %s\n", outputFile)
	fmt.Printf("✓ %d records\n", len(table.Records))
}
