package rds

// BroadcastArea groups the country codes as they are listed in [IEC 62106] annex D.
type BroadcastArea byte

const (
	EuropeanBroadcastingArea BroadcastArea = iota
	AfricanBroadcastingArea
	ITURegion2
	ITURegion3
)

// Country is one entry of the country code table. Some countries appear more than once, e.g. for overseas territories.
type Country struct {
	ISO  string
	Name string
	Code CountryCode
	Area BroadcastArea
}

// Countries contains the country and extended country codes of all broadcasting areas.
var Countries = []Country{
	{"AL", "Albania", 0x09E0, EuropeanBroadcastingArea},
	{"DZ", "Algeria", 0x02E0, EuropeanBroadcastingArea},
	{"AD", "Andorra", 0x03E0, EuropeanBroadcastingArea},
	{"AM", "Armenia", 0x0AE4, EuropeanBroadcastingArea},
	{"AT", "Austria", 0x0AE0, EuropeanBroadcastingArea},
	{"AZ", "Azerbaijan", 0x0BE3, EuropeanBroadcastingArea},
	{"PT", "Azores (Portugal)", 0x08E4, EuropeanBroadcastingArea},
	{"BE", "Belgium", 0x06E0, EuropeanBroadcastingArea},
	{"BY", "Belarus", 0x0FE3, EuropeanBroadcastingArea},
	{"BA", "Bosnia Herzegovina", 0x0FE4, EuropeanBroadcastingArea},
	{"BG", "Bulgaria", 0x08E1, EuropeanBroadcastingArea},
	{"ES", "Canaries (Spain)", 0x0EE2, EuropeanBroadcastingArea},
	{"HR", "Croatia", 0x0CE3, EuropeanBroadcastingArea},
	{"CY", "Cyprus", 0x02E1, EuropeanBroadcastingArea},
	{"CZ", "Czech Republic", 0x02E2, EuropeanBroadcastingArea},
	{"DK", "Denmark", 0x09E1, EuropeanBroadcastingArea},
	{"EG", "Egypt", 0x0FE0, EuropeanBroadcastingArea},
	{"EE", "Estonia", 0x02E4, EuropeanBroadcastingArea},
	{"DK", "Faroe (Denmark)", 0x09E1, EuropeanBroadcastingArea},
	{"FI", "Finland", 0x06E1, EuropeanBroadcastingArea},
	{"FR", "France", 0x0FE1, EuropeanBroadcastingArea},
	{"GE", "Georgia", 0x0CE4, EuropeanBroadcastingArea},
	{"DE", "Germany (East)", 0x0DE0, EuropeanBroadcastingArea},
	{"DE", "Germany (West)", 0x01E0, EuropeanBroadcastingArea},
	{"GI", "Gibraltar (United Kingdom)", 0x0AE1, EuropeanBroadcastingArea},
	{"GR", "Greece", 0x01E1, EuropeanBroadcastingArea},
	{"HU", "Hungary", 0x0BE0, EuropeanBroadcastingArea},
	{"IS", "Iceland", 0x0AE2, EuropeanBroadcastingArea},
	{"IQ", "Iraq", 0x0BE1, EuropeanBroadcastingArea},
	{"IE", "Ireland", 0x02E3, EuropeanBroadcastingArea},
	{"IL", "Israel", 0x04E0, EuropeanBroadcastingArea},
	{"IT", "Italy", 0x05E0, EuropeanBroadcastingArea},
	{"JO", "Jordan", 0x05E1, EuropeanBroadcastingArea},
	{"LV", "Latvia", 0x09E3, EuropeanBroadcastingArea},
	{"LB", "Lebanon", 0x0AE3, EuropeanBroadcastingArea},
	{"LY", "Libya", 0x0DE1, EuropeanBroadcastingArea},
	{"LI", "Liechtenstein", 0x09E2, EuropeanBroadcastingArea},
	{"LT", "Lithuania", 0x0CE2, EuropeanBroadcastingArea},
	{"LU", "Luxembourg", 0x07E1, EuropeanBroadcastingArea},
	{"MK", "Macedonia", 0x04E3, EuropeanBroadcastingArea},
	{"PT", "Madeira (Portugal)", 0x08E4, EuropeanBroadcastingArea},
	{"MT", "Malta", 0x0CE0, EuropeanBroadcastingArea},
	{"MD", "Moldova", 0x01E4, EuropeanBroadcastingArea},
	{"MC", "Monaco", 0x0BE2, EuropeanBroadcastingArea},
	{"ME", "Montenegro", 0x01E3, EuropeanBroadcastingArea},
	{"MA", "Morocco", 0x01E2, EuropeanBroadcastingArea},
	{"NL", "Netherlands", 0x08E3, EuropeanBroadcastingArea},
	{"NO", "Norway", 0x0FE2, EuropeanBroadcastingArea},
	{"PS", "Palestine", 0x08E0, EuropeanBroadcastingArea},
	{"PL", "Poland", 0x03E2, EuropeanBroadcastingArea},
	{"PT", "Portugal", 0x08E4, EuropeanBroadcastingArea},
	{"RO", "Romania", 0x0EE1, EuropeanBroadcastingArea},
	{"RU", "Russian Federation", 0x07E0, EuropeanBroadcastingArea},
	{"SM", "San Marino", 0x03E1, EuropeanBroadcastingArea},
	{"RS", "Serbia", 0x0DE2, EuropeanBroadcastingArea},
	{"SK", "Slovakia", 0x05E2, EuropeanBroadcastingArea},
	{"SI", "Slovenia", 0x09E4, EuropeanBroadcastingArea},
	{"ES", "Spain", 0x0EE2, EuropeanBroadcastingArea},
	{"SE", "Sweden", 0x0EE3, EuropeanBroadcastingArea},
	{"CH", "Switzerland", 0x04E1, EuropeanBroadcastingArea},
	{"SY", "Syrian Arab Republic", 0x06E2, EuropeanBroadcastingArea},
	{"TN", "Tunisia", 0x07E2, EuropeanBroadcastingArea},
	{"TR", "Turkey", 0x03E3, EuropeanBroadcastingArea},
	{"UA", "Ukraine", 0x06E4, EuropeanBroadcastingArea},
	{"GB", "United Kingdom", 0x0CE1, EuropeanBroadcastingArea},
	{"VA", "Vatican City State", 0x04E2, EuropeanBroadcastingArea},
	{"AO", "Angola", 0x06D0, AfricanBroadcastingArea},
	{"BI", "Burundi", 0x09D1, AfricanBroadcastingArea},
	{"BJ", "Benin", 0x0ED0, AfricanBroadcastingArea},
	{"BF", "Burkina Faso", 0x0BD0, AfricanBroadcastingArea},
	{"BW", "Botswana", 0x0BD1, AfricanBroadcastingArea},
	{"CM", "Cameroon", 0x01D0, AfricanBroadcastingArea},
	{"CV", "Cape Verde", 0x06D1, AfricanBroadcastingArea},
	{"CF", "Central African Republic", 0x02D0, AfricanBroadcastingArea},
	{"TD", "Chad", 0x09D2, AfricanBroadcastingArea},
	{"KM", "Comoros", 0x0CD1, AfricanBroadcastingArea},
	{"CD", "Democratic Republic of Congo", 0x0BD2, AfricanBroadcastingArea},
	{"CG", "Congo", 0x0CD0, AfricanBroadcastingArea},
	{"CI", "Cote d'Ivoire", 0x0CD2, AfricanBroadcastingArea},
	{"DJ", "Djibouti", 0x03D0, AfricanBroadcastingArea},
	{"GQ", "Equatorial Guinea", 0x07D0, AfricanBroadcastingArea},
	{"ER", "Eritrea", 0x0FD2, AfricanBroadcastingArea},
	{"ET", "Ethiopia", 0x0ED1, AfricanBroadcastingArea},
	{"GA", "Gabon", 0x08D0, AfricanBroadcastingArea},
	{"GM", "Gambia", 0x08D1, AfricanBroadcastingArea},
	{"GH", "Ghana", 0x03D1, AfricanBroadcastingArea},
	{"GW", "Guinea-Bissau", 0x0AD2, AfricanBroadcastingArea},
	{"GQ", "Equatorial Guinea", 0x07D0, AfricanBroadcastingArea},
	{"GN", "Republic of Guinea", 0x09D0, AfricanBroadcastingArea},
	{"KE", "Kenya", 0x06D2, AfricanBroadcastingArea},
	{"LR", "Liberia", 0x02D1, AfricanBroadcastingArea},
	{"LS", "Lesotho", 0x06D3, AfricanBroadcastingArea},
	{"MU", "Mauritius", 0x0AD3, AfricanBroadcastingArea},
	{"MG", "Madagascar", 0x04D0, AfricanBroadcastingArea},
	{"MW", "Malawi", 0x0FD0, AfricanBroadcastingArea},
	{"ML", "Mali", 0x05D0, AfricanBroadcastingArea},
	{"MR", "Mauritania", 0x04D1, AfricanBroadcastingArea},
	{"MZ", "Mozambique", 0x03D2, AfricanBroadcastingArea},
	{"NA", "Namibia", 0x01D1, AfricanBroadcastingArea},
	{"NE", "Niger", 0x08D2, AfricanBroadcastingArea},
	{"NG", "Nigeria", 0x0FD1, AfricanBroadcastingArea},
	{"RW", "Rwanda", 0x05D3, AfricanBroadcastingArea},
	{"ST", "Sao Tome & Principe", 0x05D1, AfricanBroadcastingArea},
	{"SC", "Seychelles", 0x08D3, AfricanBroadcastingArea},
	{"SN", "Senegal", 0x07D1, AfricanBroadcastingArea},
	{"SL", "Sierra Leone", 0x01D2, AfricanBroadcastingArea},
	{"SO", "Somalia", 0x07D2, AfricanBroadcastingArea},
	{"ZA", "South Africa", 0x0AD0, AfricanBroadcastingArea},
	{"SD", "Sudan", 0x0CD3, AfricanBroadcastingArea},
	{"SZ", "Swaziland", 0x05D2, AfricanBroadcastingArea},
	{"TG", "Togo", 0x0DD0, AfricanBroadcastingArea},
	{"TZ", "Tanzania", 0x0DD1, AfricanBroadcastingArea},
	{"UG", "Uganda", 0x04D2, AfricanBroadcastingArea},
	{"EH", "Western Sahara", 0x03D3, AfricanBroadcastingArea},
	{"ZM", "Zambia", 0x0ED2, AfricanBroadcastingArea},
	{"ZW", "Zimbabwe", 0x02D2, AfricanBroadcastingArea},
	{"AI", "Anguilla", 0x01A2, ITURegion2},
	{"AG", "Antigua and Barbuda", 0x02A2, ITURegion2},
	{"AR", "Argentina", 0x0AA2, ITURegion2},
	{"AW", "Aruba", 0x03A4, ITURegion2},
	{"BS", "Bahamas", 0x0FA2, ITURegion2},
	{"BB", "Barbados", 0x05A2, ITURegion2},
	{"BZ", "Belize", 0x06A2, ITURegion2},
	{"BM", "Bermuda", 0x0CA2, ITURegion2},
	{"BO", "Bolivia", 0x01A3, ITURegion2},
	{"BR", "Brazil", 0x0BA2, ITURegion2},
	{"CA", "Canada", 0x0BA1, ITURegion2},
	{"CA", "Canada", 0x0CA1, ITURegion2},
	{"CA", "Canada", 0x0DA1, ITURegion2},
	{"CA", "Canada", 0x0EA1, ITURegion2},
	{"KY", "Cayman Islands", 0x07A2, ITURegion2},
	{"CL", "Chile", 0x0CA3, ITURegion2},
	{"CO", "Colombia", 0x02A3, ITURegion2},
	{"CR", "Costa Rica", 0x08A2, ITURegion2},
	{"CU", "Cuba", 0x09A2, ITURegion2},
	{"DM", "Dominica", 0x0AA3, ITURegion2},
	{"DO", "Dominican Republic", 0x0BA3, ITURegion2},
	{"EC", "Ecuador", 0x03A2, ITURegion2},
	{"SV", "El Salvador", 0x0CA4, ITURegion2},
	{"FK", "Falkland Islands", 0x04A2, ITURegion2},
	{"GF", "French Guiana", 0x05A3, ITURegion2},
	{"GL", "Greenland", 0x0FA1, ITURegion2},
	{"GD", "Grenada", 0x0DA3, ITURegion2},
	{"GP", "Guadeloupe", 0x0EA2, ITURegion2},
	{"GT", "Guatemala", 0x01A4, ITURegion2},
	{"GY", "Guyana", 0x0FA3, ITURegion2},
	{"HT", "Haiti", 0x0DA4, ITURegion2},
	{"HN", "Honduras", 0x02A4, ITURegion2},
	{"JM", "Jamaica", 0x03A3, ITURegion2},
	{"MQ", "Martinique", 0x04A3, ITURegion2},
	{"MX", "Mexico", 0x0BA5, ITURegion2},
	{"MX", "Mexico", 0x0DA5, ITURegion2},
	{"MX", "Mexico", 0x0EA5, ITURegion2},
	{"MX", "Mexico", 0x0FA5, ITURegion2},
	{"MS", "Montserrat", 0x05A4, ITURegion2},
	{"AN", "Netherlands Antilles", 0x0DA2, ITURegion2},
	{"NI", "Nicaragua", 0x07A3, ITURegion2},
	{"PA", "Panama", 0x09A3, ITURegion2},
	{"PY", "Paraguay", 0x06A3, ITURegion2},
	{"PE", "Peru", 0x07A4, ITURegion2},
	{"PR", "Puerto Rico", 0x01A0, ITURegion2},
	{"PR", "Puerto Rico", 0x02A0, ITURegion2},
	{"PR", "Puerto Rico", 0x03A0, ITURegion2},
	{"PR", "Puerto Rico", 0x04A0, ITURegion2},
	{"PR", "Puerto Rico", 0x05A0, ITURegion2},
	{"PR", "Puerto Rico", 0x06A0, ITURegion2},
	{"PR", "Puerto Rico", 0x07A0, ITURegion2},
	{"PR", "Puerto Rico", 0x08A0, ITURegion2},
	{"PR", "Puerto Rico", 0x09A0, ITURegion2},
	{"PR", "Puerto Rico", 0x0AA0, ITURegion2},
	{"PR", "Puerto Rico", 0x0BA0, ITURegion2},
	{"PR", "Puerto Rico", 0x0DA0, ITURegion2},
	{"PR", "Puerto Rico", 0x0EA0, ITURegion2},
	{"KN", "Saint Kitts", 0x0AA4, ITURegion2},
	{"LC", "Saint Lucia", 0x0BA4, ITURegion2},
	{"PM", "St Pierre and Miquelon", 0x0FA6, ITURegion2},
	{"VC", "Saint Vincent", 0x0CA5, ITURegion2},
	{"SR", "Suriname", 0x08A4, ITURegion2},
	{"TT", "Trinidad and Tobago", 0x06A4, ITURegion2},
	{"TC", "Turks and Caicos Islands", 0x0EA3, ITURegion2},
	{"US", "United States of America", 0x01A0, ITURegion2},
	{"US", "United States of America", 0x02A0, ITURegion2},
	{"US", "United States of America", 0x03A0, ITURegion2},
	{"US", "United States of America", 0x04A0, ITURegion2},
	{"US", "United States of America", 0x05A0, ITURegion2},
	{"US", "United States of America", 0x06A0, ITURegion2},
	{"US", "United States of America", 0x07A0, ITURegion2},
	{"US", "United States of America", 0x08A0, ITURegion2},
	{"US", "United States of America", 0x09A0, ITURegion2},
	{"US", "United States of America", 0x0AA0, ITURegion2},
	{"US", "United States of America", 0x0BA0, ITURegion2},
	{"US", "United States of America", 0x0DA0, ITURegion2},
	{"US", "United States of America", 0x0EA0, ITURegion2},
	{"UY", "Uruguay", 0x09A4, ITURegion2},
	{"VE", "Venezuela", 0x0EA4, ITURegion2},
	{"VG", "Virgin Islands [British]", 0x0FA5, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x01A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x02A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x03A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x04A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x05A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x06A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x07A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x08A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x09A0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x0AA0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x0BA0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x0DA0, ITURegion2},
	{"VI", "Virgin Islands [USA]", 0x0EA0, ITURegion2},
	{"AF", "Afghanistan", 0x0AF0, ITURegion2},
	{"AU", "Australia Capital Territory", 0x01F0, ITURegion3},
	{"AU", "New South Wales", 0x02F0, ITURegion3},
	{"AU", "Victoria", 0x03F0, ITURegion3},
	{"AU", "Queensland", 0x04F0, ITURegion3},
	{"AU", "South Australia", 0x05F0, ITURegion3},
	{"AU", "Western Australia", 0x06F0, ITURegion3},
	{"AU", "Tasmania", 0x07F0, ITURegion3},
	{"AU", "Northern Territory", 0x08F0, ITURegion3},
	{"BD", "Bangladesh", 0x03F1, ITURegion3},
	{"BH", "Bahrain", 0x0EF0, ITURegion3},
	{"BN", "Brunei Darussalam", 0x0BF1, ITURegion3},
	{"BT", "Bhutan", 0x02F1, ITURegion3},
	{"KH", "Cambodia", 0x03F2, ITURegion3},
	{"CN", "China", 0x0CF0, ITURegion3},
	{"FJ", "Fiji", 0x05F1, ITURegion3},
	{"HK", "Hong Kong", 0x0FF1, ITURegion3},
	{"IN", "India", 0x05F2, ITURegion3},
	{"ID", "Indonesia", 0x0CF2, ITURegion3},
	{"IR", "Iran", 0x08F1, ITURegion3},
	{"JP", "Japan", 0x09F2, ITURegion3},
	{"KZ", "Kazakhstan", 0x0DE3, ITURegion3},
	{"KI", "Kiribati", 0x01F1, ITURegion3},
	{"KR", "Korea [South]", 0x0EF1, ITURegion3},
	{"KP", "Korea [North]", 0x0DF0, ITURegion3},
	{"KW", "Kuwait", 0x01F2, ITURegion3},
	{"KG", "Kyrghyzstan", 0x03E4, ITURegion3},
	{"LA", "Laos", 0x01F3, ITURegion3},
	{"MO", "Macao", 0x06F2, ITURegion3},
	{"MY", "Malaysia", 0x0FF0, ITURegion3},
	{"MV", "Maldives", 0x0BF2, ITURegion3},
	{"FM", "Micronesia", 0x0EF3, ITURegion3},
	{"MN", "Mongolia", 0x0FF3, ITURegion3},
	{"MM", "Myanmar [Burma]", 0x0BF0, ITURegion3},
	{"NP", "Nepal", 0x0EF2, ITURegion3},
	{"NR", "Nauru", 0x07F1, ITURegion3},
	{"NZ", "New Zealand", 0x09F1, ITURegion3},
	{"OM", "Oman", 0x06F1, ITURegion3},
	{"PK", "Pakistan", 0x04F1, ITURegion3},
	{"PH", "Philippines", 0x08F2, ITURegion3},
	{"PG", "Papua New Guinea", 0x09F3, ITURegion3},
	{"QA", "Qatar", 0x02F2, ITURegion3},
	{"SA", "Saudi Arabia", 0x09F0, ITURegion3},
	{"SB", "Soloman Islands", 0x0AF1, ITURegion3},
	{"WS", "Samoa", 0x04F2, ITURegion3},
	{"SG", "Singapore", 0x0AF2, ITURegion3},
	{"LK", "Sri Lanka", 0x0CF1, ITURegion3},
	{"TW", "Taiwan", 0x0DF1, ITURegion3},
	{"TJ", "Tajikistan", 0x05E3, ITURegion3},
	{"TH", "Thailand", 0x02F3, ITURegion3},
	{"TO", "Tonga", 0x03F3, ITURegion3},
	{"TM", "Turkmenistan", 0x0EE4, ITURegion3},
	{"AE", "UAE", 0x0DF2, ITURegion3},
	{"UZ", "Uzbekistan", 0x0BE4, ITURegion3},
	{"VN", "Vietnam", 0x07F2, ITURegion3},
	{"VU", "Vanuatu", 0x0FF2, ITURegion3},
	{"YE", "Yemen", 0x0BF3, ITURegion3},
}
