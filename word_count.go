package mmd

import (
	"github.com/riverfjs/mmd-go/internal/dump"
)

// Stats 文档结构统计
type Stats = dump.Stats

// CountWords 计算文档中的单词数
//
// 统计标题、章节标题和所有行中的非空白单词；代码块内容不计入。
func CountWords(doc *Document) int {
	return dump.Collect(doc).Words
}

// CollectStats returns node and word counts for doc.
func CollectStats(doc *Document) Stats {
	return dump.Collect(doc)
}
