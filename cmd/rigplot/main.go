package main

import (
	"flag"
	"fmt"
	"os"

	"riglogger/dataformats"
	"riglogger/postprocess"
	"riglogger/support"
)

func main() {
	input := flag.String("in", "", "workbook to process")
	output := flag.String("out", "chart.png", "chart destination")
	bins := flag.Int("bins", 100, "preprocessing bin count")
	window := flag.Int("window", 29, "Savitzky-Golay window, odd")
	order := flag.Int("poly", 3, "Savitzky-Golay polynomial order")
	ratio := flag.Float64("ratio", 0.0005, "adaptive epsilon ratio")
	title := flag.String("title", "Force vs Contraction Rate", "chart title")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}
	if !support.FileExists(*input) {
		fmt.Printf("错误: 文件 '%s' 未找到。\n", *input)
		os.Exit(1)
	}
	if *window%2 == 0 {
		fmt.Printf("*** WARNING: even window %d raised to %d ***\n", *window, *window+1)
		*window++
	}

	blocks, err := postprocess.ReadBlocks(*input)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var curves []postprocess.Block
	for _, block := range blocks {
		fmt.Printf("\n--- 正在处理: %s MPa ---\n", block.Label)
		fmt.Printf("应用'排序-分组-平均'预处理 (分成 %d 组)...\n", *bins)
		reduced := postprocess.Reduce(block.Points, *bins)
		if len(reduced) < *window {
			fmt.Printf("警告：预处理后数据点 (%d) 少于SG滤波器窗口 (%d)，跳过此压力档。\n",
				len(reduced), *window)
			continue
		}

		fmt.Println("应用Savitzky-Golay滤波器...")
		force := make([]float64, len(reduced))
		shrinkage := make([]float64, len(reduced))
		for i, point := range reduced {
			force[i] = point.Force
			shrinkage[i] = point.Shrinkage
		}
		forceSmooth, err := postprocess.Smooth(force, *window, *order)
		if err != nil {
			fmt.Println(err)
			continue
		}
		shrinkageSmooth, err := postprocess.Smooth(shrinkage, *window, *order)
		if err != nil {
			fmt.Println(err)
			continue
		}
		smooth := make([]dataformats.Measurement, len(reduced))
		for i := range smooth {
			smooth[i] = dataformats.Measurement{Force: forceSmooth[i], Shrinkage: shrinkageSmooth[i]}
		}

		epsilon := postprocess.Epsilon(smooth, *ratio)
		fmt.Printf("动态计算 Epsilon: %.5f\n", epsilon)
		keyPoints := postprocess.Simplify(smooth, epsilon)
		fmt.Printf("处理完成！关键点数: %d\n", len(keyPoints))
		curves = append(curves, postprocess.Block{Label: block.Label, Points: keyPoints})
	}
	if len(curves) == 0 {
		fmt.Println("\n处理错误：在文件中未能解析出任何有效的数据块。")
		os.Exit(1)
	}

	if err = postprocess.Chart(curves, *title, *output); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("图表已保存到 %s\n", *output)
}
