package geo

// gridStates maps 4-character Maidenhead squares to the state holding
// the bulk of the square's land. A 2°x1° square often spans borders;
// each is assigned to exactly one owner so lookups stay deterministic.
// Squares that are mostly water or outside the US are absent.
var gridStates = map[string]string{
	// Pacific Northwest
	"CN86": "WA", "CN87": "WA", "CN88": "WA", "CN96": "WA", "CN97": "WA",
	"CN98": "WA", "DN06": "WA", "DN07": "WA", "DN08": "WA", "DN16": "WA",
	"DN17": "WA", "DN18": "WA",
	"CN82": "OR", "CN83": "OR", "CN84": "OR", "CN85": "OR", "CN92": "OR",
	"CN93": "OR", "CN94": "OR", "CN95": "OR", "DN03": "OR", "DN04": "OR",
	"DN05": "OR", "DN15": "OR",

	// California and the Great Basin
	"CM87": "CA", "CM88": "CA", "CM96": "CA", "CM97": "CA", "CM98": "CA",
	"CM99": "CA", "CN80": "CA", "DM03": "CA", "DM04": "CA", "DM05": "CA",
	"DM06": "CA", "DM07": "CA", "DM12": "CA", "DM13": "CA", "DM14": "CA",
	"DM16": "CA", "DM23": "CA",
	"DM09": "NV", "DM19": "NV", "DM26": "NV", "DN00": "NV", "DN01": "NV",
	"DN10": "NV", "DN11": "NV", "DN20": "NV",
	"DM37": "UT", "DM47": "UT", "DM48": "UT", "DM58": "UT", "DN31": "UT",
	"DN40": "UT", "DN41": "UT",

	// Southwest
	"DM22": "AZ", "DM24": "AZ", "DM33": "AZ", "DM34": "AZ", "DM41": "AZ",
	"DM42": "AZ", "DM43": "AZ", "DM44": "AZ", "DM45": "AZ", "DM54": "AZ",
	"DM52": "NM", "DM62": "NM", "DM64": "NM", "DM65": "NM", "DM73": "NM",
	"DM75": "NM", "DM84": "NM",

	// Mountain states
	"DN13": "ID", "DN14": "ID", "DN22": "ID", "DN23": "ID", "DN32": "ID",
	"DN33": "ID",
	"DN26": "MT", "DN27": "MT", "DN28": "MT", "DN36": "MT", "DN37": "MT",
	"DN46": "MT", "DN47": "MT", "DN55": "MT", "DN56": "MT", "DN65": "MT",
	"DN66": "MT", "DN76": "MT", "DN77": "MT",
	"DN43": "WY", "DN51": "WY", "DN52": "WY", "DN62": "WY", "DN63": "WY",
	"DN71": "WY", "DN72": "WY",
	"DM59": "CO", "DM68": "CO", "DM69": "CO", "DM78": "CO", "DM79": "CO",
	"DN70": "CO",

	// Plains
	"DN96": "ND", "DN97": "ND", "DN98": "ND", "EN06": "ND", "EN07": "ND",
	"EN16": "ND", "EN17": "ND", "EN18": "ND",
	"DN84": "SD", "DN94": "SD", "EN03": "SD", "EN04": "SD", "EN05": "SD",
	"EN13": "SD", "EN14": "SD",
	"DN81": "NE", "DN91": "NE", "EN00": "NE", "EN01": "NE", "EN10": "NE",
	"EN11": "NE", "EN21": "NE",
	"DM97": "KS", "EM07": "KS", "EM08": "KS", "EM17": "KS", "EM18": "KS",
	"EM28": "KS",
	"DM96": "OK", "EM04": "OK", "EM05": "OK", "EM06": "OK", "EM14": "OK",
	"EM15": "OK", "EM16": "OK", "EM26": "OK",

	// Texas
	"DM61": "TX", "DM81": "TX", "DM91": "TX", "DM93": "TX", "DM95": "TX",
	"EL06": "TX", "EL07": "TX", "EL09": "TX", "EL15": "TX", "EL16": "TX",
	"EL17": "TX", "EL19": "TX", "EL29": "TX", "EM00": "TX", "EM01": "TX",
	"EM02": "TX", "EM10": "TX", "EM11": "TX", "EM12": "TX", "EM13": "TX",
	"EM21": "TX", "EM22": "TX", "EM23": "TX",

	// Upper Midwest
	"EN24": "MN", "EN25": "MN", "EN26": "MN", "EN34": "MN", "EN35": "MN",
	"EN36": "MN", "EN37": "MN", "EN47": "MN",
	"EN12": "IA", "EN22": "IA", "EN31": "IA", "EN32": "IA", "EN41": "IA",
	"EN42": "IA",
	"EN43": "WI", "EN44": "WI", "EN53": "WI", "EN54": "WI", "EN55": "WI",
	"EN63": "WI", "EN64": "WI",
	"EN65": "MI", "EN66": "MI", "EN72": "MI", "EN73": "MI", "EN74": "MI",
	"EN75": "MI", "EN76": "MI", "EN82": "MI", "EN83": "MI", "EN84": "MI",

	// Central states
	"EM27": "MO", "EM29": "MO", "EM36": "MO", "EM37": "MO", "EM38": "MO",
	"EM39": "MO", "EM46": "MO", "EM47": "MO", "EM48": "MO", "EM49": "MO",
	"EN30": "MO",
	"EM24": "AR", "EM25": "AR", "EM33": "AR", "EM34": "AR", "EM35": "AR",
	"EM44": "AR", "EM45": "AR",
	"EM58": "IL", "EM59": "IL", "EN40": "IL", "EN50": "IL", "EN51": "IL",
	"EN52": "IL", "EN61": "IL", "EN62": "IL",
	"EM67": "IN", "EM68": "IN", "EM69": "IN", "EN60": "IN", "EN70": "IN",
	"EN71": "IN",
	"EM79": "OH", "EM89": "OH", "EN80": "OH", "EN81": "OH", "EN91": "OH",

	// South
	"EL39": "LA", "EL49": "LA", "EM30": "LA", "EM31": "LA", "EM32": "LA",
	"EM40": "LA",
	"EM41": "MS", "EM42": "MS", "EM43": "MS", "EM50": "MS", "EM51": "MS",
	"EM52": "MS", "EM53": "MS", "EM54": "MS",
	"EM61": "AL", "EM62": "AL", "EM63": "AL", "EM64": "AL", "EM71": "AL",
	"EM55": "TN", "EM56": "TN", "EM65": "TN", "EM66": "TN", "EM75": "TN",
	"EM76": "TN", "EM85": "TN", "EM86": "TN",
	"EM57": "KY", "EM77": "KY", "EM78": "KY", "EM87": "KY",

	// Southeast
	"EM72": "GA", "EM73": "GA", "EM74": "GA", "EM80": "GA", "EM81": "GA",
	"EM82": "GA", "EM83": "GA", "EM84": "GA", "EM91": "GA", "EM92": "GA",
	"EM93": "GA",
	"EL87": "FL", "EL88": "FL", "EL89": "FL", "EL94": "FL", "EL95": "FL",
	"EL96": "FL", "EL97": "FL", "EL98": "FL", "EL99": "FL", "EM60": "FL",
	"EM70": "FL", "EM90": "FL",
	"EM94": "SC", "FM02": "SC", "FM03": "SC",
	"EM95": "NC", "EM96": "NC", "FM04": "NC", "FM05": "NC", "FM06": "NC",
	"FM14": "NC", "FM15": "NC", "FM16": "NC", "FM25": "NC",

	// Mid-Atlantic
	"EM88": "WV", "EM97": "WV", "EM98": "WV", "EM99": "WV", "EN90": "WV",
	"FM09": "WV",
	"FM07": "VA", "FM08": "VA", "FM17": "VA", "FM18": "VA", "FM26": "VA",
	"FM19": "MD", "FM28": "MD",
	"EN92": "PA", "FN00": "PA", "FN01": "PA", "FN10": "PA", "FN11": "PA",
	"FN21": "PA", "FM29": "PA",
	"FN20": "NJ",

	// Northeast
	"FN02": "NY", "FN03": "NY", "FN12": "NY", "FN13": "NY", "FN14": "NY",
	"FN22": "NY", "FN23": "NY", "FN24": "NY", "FN30": "NY", "FN32": "NY",
	"FN31": "CT",
	"FN41": "RI",
	"FN42": "MA",
	"FN33": "VT", "FN34": "VT",
	"FN43": "NH", "FN44": "NH",
	"FN54": "ME", "FN55": "ME", "FN64": "ME", "FN65": "ME", "FN66": "ME",

	// Alaska and Hawaii
	"AP74": "AK", "AP90": "AK", "BO37": "AK", "BP51": "AK", "BP64": "AK",
	"CO28": "AK",
	"BK29": "HI", "BL01": "HI", "BL10": "HI", "BL11": "HI",
}
