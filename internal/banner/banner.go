package banner

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

func PrintBanner() {
	myFigure := figure.NewColorFigure("SEOAUDIT", "doom", "green", true)
	myFigure.Print()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, _ = cyan.Println("════════════════════════════════════════════════")
	_, _ = green.Println("    Technical SEO site audit | https://github.com/shixin-guo/seo-agent")
	_, _ = cyan.Println("════════════════════════════════════════════════")
}
