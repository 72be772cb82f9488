package parser

import "fpt/internal/domain"

// Parser extracts failure details from test results
type Parser interface {
	ParseFailure(result domain.TestResult) domain.FailureDetail
}
