package screener

// Ratio names follow the provider's quoteSummary keys.
const (
	RatioTrailingPE          = "trailingPE"
	RatioPriceToBook         = "priceToBook"
	RatioReturnOnEquity      = "returnOnEquity"
	RatioEVToEBITDA          = "enterpriseToEbitda"
	RatioEVToRevenue         = "enterpriseToRevenue"
	RatioDebtToEquity        = "debtToEquity"
	RatioCurrentRatio        = "currentRatio"
)

// sectorRatios maps a sector to the ratios it is screened on. Sectors
// not listed here screen weak by construction.
var sectorRatios = map[string][]string{
	"Banks":                  {RatioPriceToBook, RatioReturnOnEquity},
	"NBFCs":                  {RatioPriceToBook, RatioTrailingPE},
	"Information Technology": {RatioTrailingPE, RatioEVToEBITDA},
	"IT Services":            {RatioTrailingPE, RatioEVToEBITDA},
	"FMCG":                   {RatioTrailingPE, RatioEVToEBITDA},
	"Pharmaceuticals":        {RatioTrailingPE, RatioEVToEBITDA},
	"Steel":                  {RatioEVToEBITDA},
	"Cement":                 {RatioEVToEBITDA},
	"Retail":                 {RatioTrailingPE, RatioEVToRevenue},
}
