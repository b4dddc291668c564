package components

import "image/color"

// PrimitiveType 网格图元类型
type PrimitiveType string

const (
	PrimitiveTriangles     PrimitiveType = "triangles"
	PrimitiveTriangleStrip PrimitiveType = "triangle_strip"
)

// MeshRange 网格在共享顶点缓冲中的范围
type MeshRange struct {
	Type  PrimitiveType // 图元类型
	Start uint32        // 起始顶点
	Count uint32        // 顶点数量
}

// RenderableComponent 可渲染引用
// 只描述"画什么"，不持有任何 GPU 资源；节点复制时直接按值拷贝
type RenderableComponent struct {
	MeshName string     // 网格名称
	Mesh     MeshRange  // 网格范围
	Color    color.RGBA // 渲染状态：基础颜色
	Size     float32    // 渲染状态：包围球半径（世界单位），用于投影后的屏幕尺寸
}
