package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
	"github.com/gonewx/picnic/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 把场景节点投影到屏幕上
//
// 职责范围：
//   - 所有带 RenderableComponent 的节点，按相机距离由远到近绘制
//   - 三角形网格画成投影后的圆（半径由包围球换算）
//   - 三角形条带网格画成投影后的四边形（桌面）
//   - 缩放为 0 的节点不绘制（未显现的盘子）
//
// 不包括：
//   - HUD 文字由 PlayScene 绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        ecs.EntityID

	items      []drawItem      // 每帧复用
	whiteImage *ebiten.Image   // 填充四边形用的纯白纹理
	vertices   []ebiten.Vertex // 每帧复用
	indices    []uint16        // 每帧复用
}

type drawItem struct {
	id     ecs.EntityID
	depth  float32
	world  mgl32.Mat4
	render *components.RenderableComponent
}

var colorWhite = color.RGBA{255, 255, 255, 255}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera ecs.EntityID) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(colorWhite)
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		items:         make([]drawItem, 0, 64),
		whiteImage:    white,
	}
}

// ViewProjection 计算相机的视图投影矩阵，并按屏幕尺寸更新相机宽高比
func (s *RenderSystem) ViewProjection(width, height int) (mgl32.Mat4, bool) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera)
	if !ok || width <= 0 || height <= 0 {
		return mgl32.Ident4(), false
	}
	cam.Aspect = float32(width) / float32(height)
	return CameraViewProjection(cam, utils.LocalToWorld(s.entityManager, s.camera)), true
}

// CameraViewProjection 由相机参数和相机节点的世界矩阵计算视图投影矩阵
// 相机沿局部 -z 方向观察，局部 +y 为上方
func CameraViewProjection(cam *components.CameraComponent, cameraWorld mgl32.Mat4) mgl32.Mat4 {
	projection := mgl32.Perspective(cam.FovY, cam.Aspect, cam.Near, cam.Far)
	return projection.Mul4(cameraWorld.Inv())
}

// ProjectToScreen 把世界坐标投影到屏幕像素坐标
//
// 返回:
//   - x, y: 屏幕坐标（左上角为原点）
//   - depth: 到相机的距离（裁剪空间 w）
//   - ok: 点位于相机前方时为 true
func ProjectToScreen(viewProj mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y, depth float32, ok bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-4 {
		return 0, 0, w, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	x = (ndcX + 1) / 2 * float32(width)
	y = (1 - ndcY) / 2 * float32(height)
	return x, y, w, true
}

// Draw 绘制所有可渲染节点
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	viewProj, ok := s.ViewProjection(width, height)
	if !ok {
		return
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera)
	focal := float32(1 / math.Tan(float64(cam.FovY)/2))

	s.items = s.items[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.RenderableComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		render, _ := ecs.GetComponent[*components.RenderableComponent](s.entityManager, id)
		world := utils.LocalToWorld(s.entityManager, id)
		if maxAxisScale(world) == 0 {
			continue
		}
		_, _, depth, visible := ProjectToScreen(viewProj, world.Col(3).Vec3(), width, height)
		if !visible && render.Mesh.Type != components.PrimitiveTriangleStrip {
			continue
		}
		s.items = append(s.items, drawItem{id: id, depth: depth, world: world, render: render})
	}

	// 由远到近
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].depth > s.items[j].depth
	})

	for _, item := range s.items {
		if item.render.Mesh.Type == components.PrimitiveTriangleStrip {
			s.drawQuad(screen, viewProj, item, width, height)
			continue
		}
		x, y, depth, _ := ProjectToScreen(viewProj, item.world.Col(3).Vec3(), width, height)
		radius := item.render.Size * maxAxisScale(item.world) * focal * float32(height) / 2 / depth
		vector.DrawFilledCircle(screen, x, y, radius, item.render.Color, true)
	}
}

// drawQuad 把局部 xy 平面上的单位正方形投影后填充
func (s *RenderSystem) drawQuad(screen *ebiten.Image, viewProj mgl32.Mat4, item drawItem, width, height int) {
	corners := [4]mgl32.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	r, g, b, a := item.render.Color.RGBA()

	s.vertices = s.vertices[:0]
	for _, c := range corners {
		x, y, _, ok := ProjectToScreen(viewProj, item.world.Mul4x1(c.Vec4(1)).Vec3(), width, height)
		if !ok {
			return
		}
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		})
	}
	s.indices = append(s.indices[:0], 0, 1, 2, 0, 2, 3)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(s.vertices, s.indices, s.whiteImage, op)
}

// maxAxisScale 返回世界矩阵三个轴向缩放中的最大值
func maxAxisScale(m mgl32.Mat4) float32 {
	sx := m.Col(0).Vec3().Len()
	sy := m.Col(1).Vec3().Len()
	sz := m.Col(2).Vec3().Len()
	return max(sx, sy, sz)
}
