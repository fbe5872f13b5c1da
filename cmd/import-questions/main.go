package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/question-bank/internal/config"
	"github.com/yourusername/question-bank/internal/domain/entity"
	pgRepo "github.com/yourusername/question-bank/internal/repository/postgres"
	"github.com/yourusername/question-bank/pkg/database"
)

// Утилита пакетной загрузки вопросов из XLSX-файла в банк вопросов.
// Ожидаемые колонки листа: question | answer | category | difficulty.
// Первая строка считается заголовком и пропускается.
func main() {
	filePath := flag.String("file", "", "путь к XLSX-файлу с вопросами")
	sheetName := flag.String("sheet", "", "имя листа (по умолчанию — первый лист)")
	flag.Parse()

	if *filePath == "" {
		log.Println("Использование: import-questions -file questions.xlsx [-sheet Sheet1]")
		os.Exit(1)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	questionRepo := pgRepo.NewQuestionRepo(db)

	workbook, err := excelize.OpenFile(*filePath)
	if err != nil {
		log.Printf("Не удалось открыть файл %s: %v", *filePath, err)
		os.Exit(1)
	}
	defer func() {
		if err := workbook.Close(); err != nil {
			log.Printf("Не удалось закрыть файл: %v", err)
		}
	}()

	sheet := *sheetName
	if sheet == "" {
		sheet = workbook.GetSheetName(0)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		log.Printf("Не удалось прочитать лист '%s': %v", sheet, err)
		os.Exit(1)
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		if i == 0 {
			continue // Заголовок
		}
		if len(row) < 4 {
			log.Printf("Строка %d: ожидается 4 колонки, получено %d — пропускаем", i+1, len(row))
			skipped++
			continue
		}

		difficulty, err := strconv.Atoi(row[3])
		if err != nil || difficulty < 1 {
			log.Printf("Строка %d: некорректная сложность '%s' — пропускаем", i+1, row[3])
			skipped++
			continue
		}

		question := &entity.Question{
			Text:       row[0],
			Answer:     row[1],
			Category:   row[2],
			Difficulty: difficulty,
		}
		if !question.IsComplete() {
			log.Printf("Строка %d: не все обязательные поля заполнены — пропускаем", i+1)
			skipped++
			continue
		}

		if err := questionRepo.Create(question); err != nil {
			log.Printf("Строка %d: ошибка вставки: %v — пропускаем", i+1, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Импорт завершен: загружено %d, пропущено %d", imported, skipped)
}
