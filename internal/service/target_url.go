package service

import "strings"

// TargetURLRules maps an advertiser id to a query block appended to every
// target URL provisioned for that advertiser.
var TargetURLRules = map[string]string{
	"76829": "utm_source=pp&utm_medium=cps&utm_campaign=SalesMedia&utm_content=#{PARTNER_ID}",
}

// EffectiveTargetURL applies the advertiser's rule from TargetURLRules, if
// any. The block is joined with "?" when targetURL has no query yet and with
// "&" otherwise. The placeholder in the block is kept verbatim.
func EffectiveTargetURL(advertiserID, targetURL string) string {
	block, ok := TargetURLRules[advertiserID]
	if !ok {
		return targetURL
	}

	separator := "?"
	if strings.Contains(targetURL, "?") {
		separator = "&"
	}

	return targetURL + separator + block
}
