package contacts

// nicknameGroups is a fixed table of common given-name variants. Names in
// the same group are treated as equivalent in either direction. Each name
// appears in exactly one group.
var nicknameGroups = [][]string{
	{"frederick", "fred", "freddie", "freddy"},
	{"william", "will", "bill", "billy", "liam"},
	{"robert", "rob", "bob", "bobby", "bert"},
	{"richard", "rick", "ricky", "rich", "dick"},
	{"elizabeth", "liz", "lizzie", "beth", "eliza", "betty"},
	{"margaret", "maggie", "meg", "peggy", "marge"},
	{"michael", "mike", "mikey", "mick"},
	{"james", "jim", "jimmy", "jamie"},
	{"jennifer", "jen", "jenny"},
	{"catherine", "katherine", "kate", "katie", "kathy", "cathy", "cath"},
	{"thomas", "tom", "tommy"},
	{"christopher", "chris", "kit"},
	{"daniel", "dan", "danny"},
	{"samuel", "sam", "sammy"},
	{"joseph", "joe", "joey"},
	{"david", "dave", "davy"},
	{"andrew", "andy", "drew"},
	{"anthony", "tony"},
	{"benjamin", "ben", "benny"},
	{"edward", "ed", "eddie", "ted", "teddy"},
	{"nicholas", "nick", "nicky"},
	{"john", "jack", "johnny", "jon", "jonathan"},
	{"alexander", "alexandra", "alex", "sandy", "lexi"},
	{"patricia", "patty", "trish", "tricia"},
	{"patrick", "pat", "paddy"},
	{"susan", "sue", "susie", "suzanne"},
	{"deborah", "deb", "debbie"},
	{"rebecca", "becky", "becca"},
	{"abigail", "abby"},
	{"charles", "charlie", "chuck"},
	{"stephen", "steven", "steve"},
	{"lawrence", "larry"},
	{"gerald", "gerry", "jerry"},
	{"ronald", "ron", "ronnie"},
	{"donald", "don", "donnie"},
	{"kenneth", "ken", "kenny"},
	{"gregory", "greg"},
	{"timothy", "tim", "timmy"},
	{"matthew", "matt"},
	{"peter", "pete"},
	{"philip", "phillip", "phil"},
	{"raymond", "ray"},
	{"walter", "walt", "wally"},
	{"francis", "frances", "fran", "frank", "frankie"},
	{"dorothy", "dot", "dottie"},
	{"barbara", "barb", "barbie"},
	{"christina", "christine", "chrissy", "tina"},
	{"victoria", "vicky", "tori"},
	{"jacqueline", "jackie"},
	{"kimberly", "kim"},
	{"cynthia", "cindy"},
	{"amanda", "mandy"},
	{"leonard", "leo", "lenny"},
	{"harold", "harry", "hal"},
	{"albert", "al", "bertie"},
	{"eugene", "gene"},
	{"theodore", "theo"},
	{"zachary", "zach", "zack"},
	{"joshua", "josh"},
	{"nathaniel", "nathan", "nate"},
	{"gabriel", "gabe"},
	{"maximilian", "max"},
	{"isabella", "isabel", "bella", "izzy"},
	{"gabriella", "gabby"},
	{"stephanie", "steph"},
	{"melissa", "mel", "missy"},
	{"veronica", "vera"},
	{"angela", "angie"},
	{"pamela", "pam"},
	{"sharon", "shari"},
	{"diane", "diana", "di"},
	{"carolyn", "caroline", "carol", "carrie"},
	{"louis", "lou", "louie"},
	{"vincent", "vince", "vinny"},
	{"russell", "russ"},
	{"douglas", "doug"},
	{"bradley", "brad"},
	{"jeffrey", "jeff"},
	{"stuart", "stu"},
	{"norman", "norm"},
	{"herbert", "herb"},
	{"arthur", "art", "artie"},
	{"ernest", "ernie"},
	{"stanley", "stan"},
	{"martin", "marty"},
	{"raphael", "rafe"},
	{"solomon", "sol"},
	{"emanuel", "manny"},
	{"abraham", "abe"},
	{"isaac", "ike"},
}

// nicknameIndex maps a normalized given name to its equivalence group.
var nicknameIndex = buildNicknameIndex()

func buildNicknameIndex() map[string]int {
	index := make(map[string]int)
	for group, names := range nicknameGroups {
		for _, name := range names {
			index[name] = group
		}
	}
	return index
}

// nicknameEquivalent reports whether two already-normalized given names
// belong to the same variant group.
func nicknameEquivalent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ga, ok := nicknameIndex[a]
	if !ok {
		return false
	}
	gb, ok := nicknameIndex[b]
	return ok && ga == gb
}
