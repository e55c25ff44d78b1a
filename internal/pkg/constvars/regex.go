package constvars

const (
	RegexNumeric         = `^\d+$`
	RegexSIP             = `^\d{7}$`
	RegexDNI             = `^\d{8}[A-Za-z]$`
	RegexNIE             = `^[XYZxyz]\d{7}[A-Za-z]$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM        = `^\d{2}:\d{2}$`
	RegexSpainPostalCode = `^\d{5}$`
)
