package broker

// DefaultSites is the built-in catalog of people-search and data-broker sites,
// in the order they are probed.
var DefaultSites = []Site{ //nolint: gochecknoglobals
	{
		Name:              "Spokeo",
		Domain:            "spokeo.com",
		SearchURLTemplate: "https://www.spokeo.com/{first}-{last}",
		OptOutURL:         "https://www.spokeo.com/optout",
		Notes:             "Major people-search site. Requires email verification for opt-out.",
	},
	{
		Name:              "BeenVerified",
		Domain:            "beenverified.com",
		SearchURLTemplate: "https://www.beenverified.com/people/{first}-{last}/",
		OptOutURL:         "https://www.beenverified.com/app/optout/search",
		Notes:             "Requires account creation for opt-out.",
	},
	{
		Name:              "Whitepages",
		Domain:            "whitepages.com",
		SearchURLTemplate: "https://www.whitepages.com/name/{first}-{last}/{state}",
		OptOutURL:         "https://www.whitepages.com/suppression-requests",
		Notes:             "One of the largest people-search sites.",
	},
	{
		Name:              "TruePeopleSearch",
		Domain:            "truepeoplesearch.com",
		SearchURLTemplate: "https://www.truepeoplesearch.com/results?name={first}%20{last}",
		OptOutURL:         "https://www.truepeoplesearch.com/removal",
		Notes:             "Free people search. Relatively easy opt-out.",
	},
	{
		Name:              "FastPeopleSearch",
		Domain:            "fastpeoplesearch.com",
		SearchURLTemplate: "https://www.fastpeoplesearch.com/name/{first}-{last}",
		OptOutURL:         "https://www.fastpeoplesearch.com/removal",
		Notes:             "Free people search with opt-out form.",
	},
	{
		Name:              "That's Them",
		Domain:            "thatsthem.com",
		SearchURLTemplate: "https://thatsthem.com/name/{first}-{last}",
		OptOutURL:         "https://thatsthem.com/optout",
		Notes:             "Aggregates data from multiple sources.",
	},
	{
		Name:              "Intelius",
		Domain:            "intelius.com",
		SearchURLTemplate: "https://www.intelius.com/people-search/{first}-{last}/",
		OptOutURL:         "https://www.intelius.com/opt-out",
		Notes:             "Paid service but still lists people publicly.",
	},
	{
		Name:              "US Search",
		Domain:            "ussearch.com",
		SearchURLTemplate: "https://www.ussearch.com/search/results?firstName={first}&lastName={last}",
		OptOutURL:         "https://www.ussearch.com/opt-out/submit/",
	},
	{
		Name:              "PeopleFinder",
		Domain:            "peoplefinder.com",
		SearchURLTemplate: "https://www.peoplefinder.com/results?firstName={first}&lastName={last}",
		OptOutURL:         "https://www.peoplefinder.com/optout.php",
	},
	{
		Name:              "Radaris",
		Domain:            "radaris.com",
		SearchURLTemplate: "https://radaris.com/p/{first}/{last}/",
		OptOutURL:         "https://radaris.com/control/privacy",
		Notes:             "Requires account to opt-out.",
	},
	{
		Name:              "MyLife",
		Domain:            "mylife.com",
		SearchURLTemplate: "https://www.mylife.com/search?firstName={first}&lastName={last}",
		OptOutURL:         "https://www.mylife.com/ccpa/index.pubview",
		Notes:             "Known for reputation scores. CCPA request for removal.",
	},
	{
		Name:              "PeopleLooker",
		Domain:            "peoplelooker.com",
		SearchURLTemplate: "https://www.peoplelooker.com/people-search/{first}-{last}",
		OptOutURL:         "https://www.peoplelooker.com/f/optout/search",
	},
	{
		Name:              "Instant Checkmate",
		Domain:            "instantcheckmate.com",
		SearchURLTemplate: "https://www.instantcheckmate.com/people/{first}-{last}/",
		OptOutURL:         "https://www.instantcheckmate.com/opt-out/",
	},
	{
		Name:              "Nuwber",
		Domain:            "nuwber.com",
		SearchURLTemplate: "https://nuwber.com/search?name={first}%20{last}",
		OptOutURL:         "https://nuwber.com/removal/link",
	},
	{
		Name:              "Clustrmaps",
		Domain:            "clustrmaps.com",
		SearchURLTemplate: "https://clustrmaps.com/persons/{first}-{last}",
		OptOutURL:         "https://clustrmaps.com/bl/opt-out",
	},
	{
		Name:              "CyberBackgroundChecks",
		Domain:            "cyberbackgroundchecks.com",
		SearchURLTemplate: "https://www.cyberbackgroundchecks.com/people/{first}-{last}",
		OptOutURL:         "https://www.cyberbackgroundchecks.com/removal",
	},
	{
		Name:              "Addresses.com",
		Domain:            "addresses.com",
		SearchURLTemplate: "https://www.addresses.com/people/{first}+{last}",
		OptOutURL:         "https://www.addresses.com/optout.php",
	},
	{
		Name:              "Advanced Background Checks",
		Domain:            "advancedbackgroundchecks.com",
		SearchURLTemplate: "https://www.advancedbackgroundchecks.com/names/{first}-{last}",
		OptOutURL:         "https://www.advancedbackgroundchecks.com/removal",
	},
	{
		Name:              "Public Records Now",
		Domain:            "publicrecordsnow.com",
		SearchURLTemplate: "https://www.publicrecordsnow.com/name/{first}+{last}",
		Notes:             "May require direct contact for removal.",
	},
}
