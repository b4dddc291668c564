package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gonewx/picnic/pkg/components"
	"github.com/gonewx/picnic/pkg/ecs"
	"gopkg.in/yaml.v3"
)

// 场景描述中必须存在的节点名称
const (
	NodeBottle  = "Bottle"  // 瞄准时被旋转的瓶子
	NodeCursor  = "Cursor"  // 准星（Bottle 的子节点），决定发射方向
	NodeKetchup = "Ketchup" // 番茄酱子弹
	NodeHit     = "Hit"     // 击中标记
	NodeHotdog  = "Hotdog"  // 热狗原型
	NodePlate   = "Plate"   // 盘子原型
	NodeApple   = "Apple"   // 苹果原型
)

// requiredNodes 加载时校验的节点列表
var requiredNodes = []string{NodeBottle, NodeCursor, NodeKetchup, NodeHit, NodeHotdog, NodePlate, NodeApple}

// parkedNodes 加载后被移到屏幕外的原型节点
var parkedNodes = []string{NodeHotdog, NodeHit, NodePlate, NodeApple}

// SceneDescription 场景描述文件（data/picnic.yaml）
type SceneDescription struct {
	Meshes  map[string]MeshDescription `yaml:"meshes"`
	Nodes   []NodeDescription          `yaml:"nodes"`
	Cameras []CameraDescription        `yaml:"cameras"`
}

// MeshDescription 网格范围与渲染状态
type MeshDescription struct {
	Type  string   `yaml:"type"`
	Start uint32   `yaml:"start"`
	Count uint32   `yaml:"count"`
	Color [4]uint8 `yaml:"color"`
	Size  float32  `yaml:"size"`
}

// NodeDescription 场景节点
type NodeDescription struct {
	Name     string      `yaml:"name"`
	Mesh     string      `yaml:"mesh"`     // 为空表示不可见节点（如相机）
	Parent   string      `yaml:"parent"`   // 为空表示根节点
	Position mgl32.Vec3  `yaml:"position"` // 相对父节点的位置
	Rotation [4]float32  `yaml:"rotation"` // 四元数 (w, x, y, z)，全 0 视为单位旋转
	Scale    *mgl32.Vec3 `yaml:"scale"`    // 缺省为 (1,1,1)
}

// CameraDescription 相机
type CameraDescription struct {
	Node string  `yaml:"node"`
	FovY float32 `yaml:"fovy"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// Prototype 可复制的节点模板（变换 + 可渲染引用）
type Prototype struct {
	Transform  components.TransformComponent
	Renderable components.RenderableComponent
}

// AssetRegistry 资源注册表
//
// 取代全局的网格/场景缓存：在构造后调用一次 Load，把场景描述实例化到
// EntityManager 中，并记录热狗、盘子、苹果的原型供运行时复制。
// Load 只能成功调用一次；之后注册表只读。
type AssetRegistry struct {
	loaded     bool
	nodes      map[string]ecs.EntityID
	prototypes map[string]Prototype
	camera     ecs.EntityID
}

// NewAssetRegistry 创建空注册表
func NewAssetRegistry() *AssetRegistry {
	return &AssetRegistry{
		nodes:      make(map[string]ecs.EntityID),
		prototypes: make(map[string]Prototype),
	}
}

// ParseSceneDescription 解析场景描述 YAML
func ParseSceneDescription(data []byte) (*SceneDescription, error) {
	var desc SceneDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene description: %w", err)
	}
	return &desc, nil
}

// Load 实例化场景并登记原型
//
// 参数:
//   - em: 场景节点存储
//   - desc: 场景描述
//   - offscreen: 原型节点被停放的位置
//
// 返回:
//   - error: 重复加载、相机数量不为 1、节点缺失或引用错误时返回错误
func (r *AssetRegistry) Load(em *ecs.EntityManager, desc *SceneDescription, offscreen mgl32.Vec3) error {
	if r.loaded {
		return fmt.Errorf("asset registry already loaded")
	}
	if em == nil || desc == nil {
		return fmt.Errorf("entity manager and scene description cannot be nil")
	}

	if len(desc.Cameras) != 1 {
		return fmt.Errorf("expecting scene to have exactly one camera, but it has %d", len(desc.Cameras))
	}

	meshes := make(map[string]components.RenderableComponent, len(desc.Meshes))
	for name, m := range desc.Meshes {
		primitive := components.PrimitiveType(m.Type)
		if primitive == "" {
			primitive = components.PrimitiveTriangles
		}
		meshes[name] = components.RenderableComponent{
			MeshName: name,
			Mesh:     components.MeshRange{Type: primitive, Start: m.Start, Count: m.Count},
			Color:    color.RGBA{R: m.Color[0], G: m.Color[1], B: m.Color[2], A: m.Color[3]},
			Size:     m.Size,
		}
	}

	// 第一遍：创建节点
	transforms := make(map[string]*components.TransformComponent, len(desc.Nodes))
	for _, n := range desc.Nodes {
		if n.Name == "" {
			return fmt.Errorf("scene node without a name")
		}
		if _, dup := r.nodes[n.Name]; dup {
			return fmt.Errorf("duplicate scene node %q", n.Name)
		}

		id := em.CreateEntity()
		transform := components.NewTransformComponent(n.Name)
		transform.Position = n.Position
		if n.Rotation != [4]float32{} {
			transform.Rotation = mgl32.Quat{W: n.Rotation[0], V: mgl32.Vec3{n.Rotation[1], n.Rotation[2], n.Rotation[3]}}.Normalize()
		}
		if n.Scale != nil {
			transform.Scale = *n.Scale
		}
		em.AddComponent(id, transform)

		if n.Mesh != "" {
			mesh, ok := meshes[n.Mesh]
			if !ok {
				return fmt.Errorf("scene node %q references unknown mesh %q", n.Name, n.Mesh)
			}
			renderable := mesh
			em.AddComponent(id, &renderable)
		}

		r.nodes[n.Name] = id
		transforms[n.Name] = transform
	}

	// 第二遍：解析父节点
	for _, n := range desc.Nodes {
		if n.Parent == "" {
			continue
		}
		parent, ok := r.nodes[n.Parent]
		if !ok {
			return fmt.Errorf("scene node %q references unknown parent %q", n.Name, n.Parent)
		}
		transforms[n.Name].Parent = parent
	}

	for _, name := range requiredNodes {
		if _, ok := r.nodes[name]; !ok {
			return fmt.Errorf("scene is missing required node %q", name)
		}
	}

	cam := desc.Cameras[0]
	camID, ok := r.nodes[cam.Node]
	if !ok {
		return fmt.Errorf("camera references unknown node %q", cam.Node)
	}
	if cam.FovY <= 0 {
		return fmt.Errorf("camera fovy must be positive, got %.3f", cam.FovY)
	}
	near, far := cam.Near, cam.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = 1000
	}
	em.AddComponent(camID, &components.CameraComponent{FovY: cam.FovY, Aspect: 1, Near: near, Far: far})
	r.camera = camID

	// 登记原型（停放前的变换即原型变换，位置无意义）
	for _, name := range []string{NodeHotdog, NodePlate, NodeApple} {
		id := r.nodes[name]
		renderable, ok := ecs.GetComponent[*components.RenderableComponent](em, id)
		if !ok {
			return fmt.Errorf("prototype node %q has no mesh", name)
		}
		r.prototypes[name] = Prototype{Transform: *transforms[name], Renderable: *renderable}
	}

	for _, name := range parkedNodes {
		transforms[name].Position = offscreen
	}

	r.loaded = true
	log.Printf("[AssetRegistry] Loaded scene: %d nodes, %d meshes", len(desc.Nodes), len(meshes))
	return nil
}

// IsLoaded 返回注册表是否已加载
func (r *AssetRegistry) IsLoaded() bool {
	return r.loaded
}

// Node 按名称查找场景描述中的节点
func (r *AssetRegistry) Node(name string) (ecs.EntityID, bool) {
	id, ok := r.nodes[name]
	return id, ok
}

// Prototype 返回可复制的原型
func (r *AssetRegistry) Prototype(name string) (Prototype, bool) {
	p, ok := r.prototypes[name]
	return p, ok
}

// Camera 返回唯一相机节点
func (r *AssetRegistry) Camera() ecs.EntityID {
	return r.camera
}
