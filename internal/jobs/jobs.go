// Package jobs declares the scrape job table: which vendor adapter
// runs against which catalog URLs.
package jobs

import (
	"fmt"

	"machinedex/internal/scraper"
	"machinedex/internal/vendors"
)

// Job pairs one adapter instance with the catalog pages it scrapes.
// Jobs run in table order, one batch file per job.
type Job struct {
	Adapter scraper.Adapter
	URLs    []string
}

// pageRange expands a URL template containing one %d over [from, to].
func pageRange(format string, from, to int) []string {
	urls := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		urls = append(urls, fmt.Sprintf(format, i))
	}
	return urls
}

// Default returns the full production job table.
func Default() []Job {
	return []Job{
		{
			Adapter: vendors.NewArsenal("Plate-loaded", "Plate-loaded"),
			URLs: []string{
				"https://www.ironcompany.com/strength-training-equipment/plate-loaded-leverage-gym-equipment/brand-arsenal_strength",
			},
		},
		{
			Adapter: vendors.NewArsenal("Selectorized", "Selectorized"),
			URLs: []string{
				"https://www.ironcompany.com/strength-training-equipment/selectorized-gym-equipment/brand-arsenal_strength",
			},
		},
		{
			Adapter: vendors.NewAtlantis(),
			URLs: []string{
				"https://rawfitnessequipment.com.au/collections/atlantis?page=3",
			},
		},
		{
			Adapter: vendors.NewBootyBuilder("Plate-loaded"),
			URLs: []string{
				"https://bootybuilder.com/product-category/machines/plate-loaded-machines/",
			},
		},
		{
			Adapter: vendors.NewBootyBuilder("Selectorized"),
			URLs: []string{
				"https://bootybuilder.com/product-category/machines/weight-stack-machines/",
			},
		},
		{
			Adapter: vendors.NewCybex(),
			URLs:    pageRange("https://bestgymequipment.co.uk/collections/cybex?page=%d&grid_list=grid-view", 1, 5),
		},
		{
			Adapter: vendors.NewDrax("Welliv Pro", "Selectorized"),
			URLs:    []string{"https://www.draxfit.com/ko/strength/welliv-pro/products"},
		},
		{
			Adapter: vendors.NewDrax("Welliv", "Selectorized"),
			URLs:    []string{"https://www.draxfit.com/ko/strength/welliv/products"},
		},
		{
			Adapter: vendors.NewDrax("Welliv Pro Dual", "Selectorized"),
			URLs:    []string{"https://www.draxfit.com/ko/strength/welliv-pro-dual/products"},
		},
		{
			Adapter: vendors.NewDrax("Plate-loaded", "Plate-loaded"),
			URLs:    []string{"https://www.draxfit.com/ko/strength/plate-loaded/products"},
		},
		{
			Adapter: vendors.NewDynaforce("Selectorized"),
			URLs:    pageRange("http://www.dynaforce.co.kr/bbs/board.php?bo_table=weight&page=%d", 1, 2),
		},
		{
			Adapter: vendors.NewDynaforce("Plate-loaded"),
			URLs:    []string{"http://www.dynaforce.co.kr/bbs/board.php?bo_table=hammer"},
		},
		{
			Adapter: vendors.NewFreemotion("Genesis", "Selectorized"),
			URLs:    []string{"https://freemotionfitness.com/strength-machines/genesis/"},
		},
		{
			Adapter: vendors.NewFreemotion("Genesis DS", "Selectorized"),
			URLs:    []string{"https://freemotionfitness.com/strength-machines/genesis-ds/"},
		},
		{
			Adapter: vendors.NewFreemotion("Epic Selectorized", "Selectorized"),
			URLs:    []string{"https://freemotionfitness.com/strength-machines/epic-selectorized/"},
		},
		{
			Adapter: vendors.NewFreemotion("Epic Plate-Loaded", "Plate-loaded"),
			URLs:    []string{"https://freemotionfitness.com/strength-machines/epic-plate-loaded/"},
		},
		{
			Adapter: vendors.NewGym80("Sygnum", "Selectorized"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/sygnum"},
		},
		{
			Adapter: vendors.NewGym80("Sygnum Dual", "Selectorized"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/sygnum-dual"},
		},
		{
			Adapter: vendors.NewGym80("Sygnum Cable Art", "Selectorized"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/sygnum-cable-art"},
		},
		{
			Adapter: vendors.NewGym80("Sygnum Combo", "Selectorized"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/sygnum-combo"},
		},
		{
			Adapter: vendors.NewGym80("Sygnum Stations", "Selectorized"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/sygnum-stations"},
		},
		{
			Adapter: vendors.NewGym80("Pure Kraft Strong", "Plate-loaded"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/pure-kraft-strong"},
		},
		{
			Adapter: vendors.NewGym80("Pure Kraft", "Plate-loaded"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/pure-kraft"},
		},
		{
			Adapter: vendors.NewGym80("80Athletics", "Plate-loaded"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/80athletics"},
		},
		{
			Adapter: vendors.NewGym80("Outdoor", "Plate-loaded"),
			URLs:    []string{"https://www.gym80.co.uk/product-ranges/outdoor"},
		},
		{
			Adapter: vendors.NewGymleco("Plate-loaded"),
			URLs:    []string{"https://gymleco.com/collections/plate-loaded-machines"},
		},
		{
			Adapter: vendors.NewGymleco("Selectorized"),
			URLs:    []string{"https://gymleco.com/collections/cable-stations"},
		},
		{
			Adapter: vendors.NewGymleco("Selectorized"),
			URLs:    []string{"https://gymleco.com/collections/selectorized-gym-machines"},
		},
		{
			Adapter: vendors.NewGymleco("Selectorized"),
			URLs:    []string{"https://gymleco.com/collections/combi-machines"},
		},
		{
			Adapter: vendors.NewHammerStrength(),
			URLs:    pageRange("https://www.lifefitness.com/en-us/catalog?Brand=1053&Type=1079&pageNumber=%d#searchform", 1, 9),
		},
		{
			Adapter: vendors.NewHoist("Plate-loaded"),
			URLs:    []string{"https://www.hoistfitness.com/collections/ccat-plate-loaded"},
		},
		{
			Adapter: vendors.NewHoist("Selectorized"),
			URLs: []string{
				"https://www.hoistfitness.com/collections/ccat-hd-dual-series",
				"https://www.hoistfitness.com/collections/ccat-selectorized",
				"https://www.hoistfitness.com/collections/ccat-multi-jungle-systems",
			},
		},
		{
			Adapter: vendors.NewLegendFitness("Selectorized"),
			URLs: []string{
				"https://www.legendfitness.com/products/selectorized-equipment/upper-body-selectorized-equipment/",
				"https://www.legendfitness.com/products/selectorized-equipment/lower-body-and-core-selectorized-equipment/",
				"https://www.legendfitness.com/products/selectorized-equipment/multi-stack-selectorized-equipment/",
				"https://www.legendfitness.com/products/selectorized-equipment/combo-stations-selectorized-equipment/",
			},
		},
		{
			Adapter: vendors.NewLegendFitness("Plate-loaded"),
			URLs: []string{
				"https://www.legendfitness.com/products/all-plate-loaded/upper-body-plate-loaded-equipment/",
				"https://www.legendfitness.com/products/all-plate-loaded/lower-body-plate-loaded-equipment/",
			},
		},
		{
			Adapter: vendors.NewLexco("팔콘", "Selectorized"),
			URLs: []string{
				"http://www.lexco.kr/shop_list.php?gsp_p=1&gsp_md=shop_goods&gsp_srch_cate=188",
				"http://www.lexco.kr/shop_list.php?gsp_p=2&gsp_md=shop_goods&gsp_srch_cate=188",
			},
		},
		{
			Adapter: vendors.NewLexco("마스터 프로", "Selectorized"),
			URLs:    []string{"http://www.lexco.kr/shop_list.php?gsp_srch_cate=208"},
		},
		{
			Adapter: vendors.NewLexco("마스터", "Selectorized"),
			URLs:    []string{"http://www.lexco.kr/shop_list.php?gsp_srch_cate=190"},
		},
		{
			Adapter: vendors.NewLexco("타우러스", "Selectorized"),
			URLs:    []string{"http://www.lexco.kr/shop_list.php?gsp_srch_cate=210"},
		},
		{
			Adapter: vendors.NewLexco("마스터 프로", "Plate-loaded"),
			URLs:    []string{"http://www.lexco.kr/shop_list.php?gsp_srch_cate=207"},
		},
		{
			Adapter: vendors.NewMatrix("Selectorized"),
			URLs: []string{
				"https://kr.matrixfitness.com/kor/strength/catalog?series=ultra",
				"https://kr.matrixfitness.com/kor/strength/catalog?series=versa",
				"https://kr.matrixfitness.com/kor/strength/catalog?series=aura",
				"https://kr.matrixfitness.com/kor/strength/catalog?series=go",
			},
		},
		{
			Adapter: vendors.NewMatrix("Plate-loaded"),
			URLs:    []string{"https://kr.matrixfitness.com/kor/strength/catalog?series=xult"},
		},
		{
			Adapter: vendors.NewNautilus("Selectorized"),
			URLs: append(append([]string{
				"https://shop.corehandf.com/collections/inspiration-line?page=1",
				"https://shop.corehandf.com/collections/inspiration-line?page=2",
			},
				pageRange("https://shop.corehandf.com/collections/impact-line?page=%d", 1, 3)...),
				append(pageRange("https://shop.corehandf.com/collections/instinct-line?page=%d", 1, 3),
					"https://shop.corehandf.com/collections/humansport-line")...),
		},
		{
			Adapter: vendors.NewNautilus("Plate-loaded"),
			URLs: []string{
				"https://shop.corehandf.com/collections/leverage-line",
				"https://shop.corehandf.com/collections/plate-loaded-line",
			},
		},
		{
			Adapter: vendors.NewNewTech("On Him", "Selectorized"),
			URLs: []string{
				"https://ntws.co.kr/54",
				"https://ntws.co.kr/58",
			},
		},
		{
			Adapter: vendors.NewNewTech("Advance", "Selectorized"),
			URLs:    []string{"https://ntws.co.kr/50"},
		},
		{
			Adapter: vendors.NewNewTech("Plate Load", "Plate-loaded"),
			URLs:    []string{"https://ntws.co.kr/50"},
		},
		{
			Adapter: vendors.NewNewTech("M-torture", "Plate-loaded"),
			URLs: []string{
				"https://ntws.co.kr/51",
				"https://ntws.co.kr/59",
			},
		},
		{
			Adapter: vendors.NewNewTech("Cable Motion", "Cable"),
			URLs:    []string{"https://ntws.co.kr/53"},
		},
		{
			Adapter: vendors.NewPanatta("Monolith", "Selectorized"),
			URLs:    pageRange("https://www.panattasport.com/en/monolith/page/%d/#content", 1, 6),
		},
		{
			Adapter: vendors.NewPanatta("Fit Evo", "Selectorized"),
			URLs:    pageRange("https://www.panattasport.com/en/fit-evo/page/%d/#content", 1, 6),
		},
		{
			Adapter: vendors.NewPanatta("Sec", "Selectorized"),
			URLs:    pageRange("https://www.panattasport.com/en/sec/page/%d/#content", 1, 3),
		},
		{
			Adapter: vendors.NewPanatta("Freeweight Special", "Plate-loaded"),
			URLs:    pageRange("https://www.panattasport.com/en/freeweight-special/page/%d/#content", 1, 5),
		},
		{
			Adapter: vendors.NewPanatta("Freeweight HP", "Plate-loaded"),
			URLs:    pageRange("https://www.panattasport.com/en/freeweight-hp/page/%d/#content", 1, 4),
		},
		{
			Adapter: vendors.NewPanatta("Freeweight One", "Plate-loaded"),
			URLs:    pageRange("https://www.panattasport.com/en/freeweight-one/page/%d/#content", 1, 2),
		},
		{
			Adapter: vendors.NewPanatta("Fantastic", "Selectorized"),
			URLs:    []string{"https://www.panattasport.com/en/fantastic"},
		},
		{
			Adapter: vendors.NewPrimeFitness("Evolution", "Selectorized"),
			URLs:    []string{"https://www.primefitnessusa.com/collections/evolution"},
		},
		{
			Adapter: vendors.NewPrimeFitness("Hybrid", "Selectorized"),
			URLs:    pageRange("https://www.primefitnessusa.com/collections/hybrid?page=%d", 1, 3),
		},
		{
			Adapter: vendors.NewPrimeFitness("Plate-loaded", "Plate-loaded"),
			URLs:    pageRange("https://www.primefitnessusa.com/collections/plate-loaded-equipment?page=%d", 1, 2),
		},
		{
			Adapter: vendors.NewTechnogym("Plate-loaded"),
			URLs:    []string{"https://www.technogym.com/en-INT/category/plate-loaded"},
		},
		{
			Adapter: vendors.NewTechnogym("Selectorized"),
			URLs:    []string{"https://www.technogym.com/en-INT/category/selectorized-strength-machines/"},
		},
		{
			Adapter: vendors.NewUSP("LeverageSeries", "Plate-loaded"),
			URLs:    []string{"https://www.uspfitness.com/LeverageSeries"},
		},
		{
			Adapter: vendors.NewViliti("Selectorized"),
			URLs: []string{
				"https://kaesun.com/pages/upturn#none",
				"https://kaesun.com/pages/weight#none",
			},
		},
		{
			Adapter: vendors.NewViliti("Plate-loaded"),
			URLs: []string{
				"https://kaesun.com/pages/xploseries#none",
				"https://kaesun.com/pages/xplo#none",
				"https://kaesun.com/pages/plateloaded",
			},
		},
	}
}
