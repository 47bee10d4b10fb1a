package errors

// Translator diagnostic codes. T1xxx codes mark front-end/back-end contract
// violations: source IR shapes the translator has no lowering rule for.
// T2xxx codes mark non-fatal translation warnings.
const (
	CodeUnknownNode      = "T1001" // source node kind outside the closed union
	CodeUnknownOperator  = "T1002" // operator token outside the lowering tables
	CodeBadAssignTarget  = "T1003" // assignment left-hand side not lowerable
	CodeBadForLoop       = "T1004" // for-loop outside the canonical shape
	CodeBadClassMember   = "T1005" // class member kind other than method
	CodeUnknownLiteral   = "T1006" // literal kind outside the closed union
	CodeMalformedTry     = "T1007" // try without handler and finalizer
	CodeHoistedPrelude   = "T2001" // loop test prelude evaluated once
	CodeSwitchDefault    = "T2002" // switch default case not in last position
	CodeDroppedRestParam = "T2003" // non-trailing rest parameter demoted
)
