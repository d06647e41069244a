package config

const (
	defaultAudioDir      = "~/datasets/disorder-voices"
	defaultSpreadsheet   = "~/datasets/Speeches.xlsx"
	defaultOutputDir     = "~/datasets/filtered_dysarthric_dataset"
	defaultSentencesFile = "~/datasets/russian_sentences.txt"
	defaultCleanedFile   = "~/datasets/russian_sentences_cleaned.txt"

	defaultMinDurationSec    = 10.0
	defaultMaxDurationSec    = 15.0
	defaultTargetDurationSec = 12.0
	defaultAudioExtension    = ".wav"

	// Column headers as they appear in the source spreadsheet.
	defaultIDColumn   = "Число"
	defaultTextColumn = "Русская речь"

	defaultSentenceMinLength = 20
	defaultSentenceMaxLength = 100

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AudioDir:      defaultAudioDir,
			Spreadsheet:   defaultSpreadsheet,
			OutputDir:     defaultOutputDir,
			SentencesFile: defaultSentencesFile,
			CleanedFile:   defaultCleanedFile,
		},
		Filter: Filter{
			MinDurationSec:    defaultMinDurationSec,
			MaxDurationSec:    defaultMaxDurationSec,
			TargetDurationSec: defaultTargetDurationSec,
			AudioExtension:    defaultAudioExtension,
		},
		Catalog: Catalog{
			IDColumn:   defaultIDColumn,
			TextColumn: defaultTextColumn,
		},
		Sentences: Sentences{
			MinLength: defaultSentenceMinLength,
			MaxLength: defaultSentenceMaxLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
