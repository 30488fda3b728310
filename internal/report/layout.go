package report

import "github.com/verte-zerg/svstats/internal/model"

const wikiTableOpen = "\n{| class=\"wikitable sortable\" style=\"border-spacing: 7px; border-width: 0;\""

type layout struct {
	statisticsHead   string
	toplistsHead     string
	sectionHead      string
	statisticColumns string
	statisticRow     string
	toplistColumns   string
	toplistRow       string
	sectionFoot      string
}

var plainLayout = layout{
	statisticsHead:   "\nStatistics:",
	toplistsHead:     "\nToplists:",
	sectionHead:      "\n[%s]",
	statisticColumns: "%.0s",
	statisticRow:     "\n%d - %s (%.2f%%)",
	toplistColumns:   "%.0s",
	toplistRow:       "\n%d - %s",
	sectionFoot:      "\n",
}

var tabularLayout = layout{
	statisticsHead:   "\n= Statistics =",
	toplistsHead:     "\n= Toplists =",
	sectionHead:      "\n== %s ==",
	statisticColumns: wikiTableOpen + "\n! %s\n! Count\n! %%",
	statisticRow:     "\n|-\n| %s || %d || %.2f%%",
	toplistColumns:   wikiTableOpen + "\n! %s\n! Character",
	toplistRow:       "\n|-\n| %d || %s",
	sectionFoot:      "\n|}\n",
}

func layoutFor(style model.Style) layout {
	if style == model.StyleTabular {
		return tabularLayout
	}
	return plainLayout
}
