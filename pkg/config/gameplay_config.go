package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// GameplayConfig 玩法调参配置
//
// 包含生命值、生成节奏、热狗/苹果/番茄酱子弹的全部数值常量。
// 时间单位为秒，距离单位为场景世界坐标。
//
// 配置文件位置: data/gameplay.yaml
// YAML 中缺省的字段保留 DefaultGameplayConfig 的值。
type GameplayConfig struct {
	// Health 生命值规则
	Health HealthConfig `yaml:"health"`

	// Spawn 热狗和苹果的生成节奏
	Spawn SpawnConfig `yaml:"spawn"`

	// Hotdog 热狗的移动路径、碰撞盒和动画时长
	Hotdog HotdogConfig `yaml:"hotdog"`

	// Apple 苹果的抛物线参数、碰撞盒和动画时长
	Apple AppleConfig `yaml:"apple"`

	// Projectile 番茄酱子弹
	Projectile ProjectileConfig `yaml:"projectile"`

	// OffscreenPosition 原型节点被停放的屏幕外位置
	OffscreenPosition mgl32.Vec3 `yaml:"offscreenPosition"`
}

// HealthConfig 生命值规则
type HealthConfig struct {
	Initial            int `yaml:"initial"`            // 初始生命值
	AppleHitDamage     int `yaml:"appleHitDamage"`     // 击中苹果扣除的生命值
	HotdogEscapeDamage int `yaml:"hotdogEscapeDamage"` // 热狗掉下桌子扣除的生命值
}

// SpawnConfig 两类目标的生成规则
type SpawnConfig struct {
	Hotdog SpawnRule `yaml:"hotdog"`
	Apple  SpawnRule `yaml:"apple"`
}

// SpawnRule 定时生成规则
//
// 计时器从 0 开始累加。InitialDelay 大于 0 时第一次生成发生在 InitialDelay 之后，
// 否则第一次生成同样等待 Interval；之后每隔 Interval 尝试生成一次。
// 活动数量达到 MaxActive 时静默跳过，计时器保持累加。
type SpawnRule struct {
	InitialDelay float32 `yaml:"initialDelay"`
	Interval     float32 `yaml:"interval"`
	MaxActive    int     `yaml:"maxActive"`
}

// Range 闭区间 [Min, Max]
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// HotdogConfig 热狗配置
type HotdogConfig struct {
	SpawnY      float32    `yaml:"spawnY"`      // 路径起点的 y（桌子远端）
	Depth       float32    `yaml:"depth"`       // 路径所在平面的 z（桌面高度）
	XRange      Range      `yaml:"xRange"`      // 路径点 x 的随机范围
	Speed       float32    `yaml:"speed"`       // 沿路径移动速度（单位/秒）
	Radius      mgl32.Vec3 `yaml:"radius"`      // 碰撞盒半尺寸（比模型大，补偿子弹离散步进）
	PathEpsilon float32    `yaml:"pathEpsilon"` // 点在线段上判定的叉积容差

	FallDuration float32 `yaml:"fallDuration"` // 掉下桌子动画时长
	FallSpeed    float32 `yaml:"fallSpeed"`    // 掉落时沿 -z 的速度（单位/秒）

	DeathStandstill float32 `yaml:"deathStandstill"` // 被击中后静止时长
	DeathDuration   float32 `yaml:"deathDuration"`   // 被击中到移除的总时长
	DeathSpinRate   float32 `yaml:"deathSpinRate"`   // 死亡下落时绕 x 轴的角速度（弧度/秒）
	DeathSinkSpeed  float32 `yaml:"deathSinkSpeed"`  // 死亡下落时沿 -z 的速度（单位/秒）
}

// AppleConfig 苹果配置
type AppleConfig struct {
	InitPos        mgl32.Vec3 `yaml:"initPos"`        // 抛出点（y 会被随机覆盖）
	InitVel        mgl32.Vec3 `yaml:"initVel"`        // 初速度（x 会叠加随机扰动）
	LaneRange      Range      `yaml:"laneRange"`      // 抛出点 y 的随机范围
	VelocityJitter Range      `yaml:"velocityJitter"` // x 方向速度扰动范围
	Gravity        float32    `yaml:"gravity"`        // z 方向重力加速度
	SpinRate       float32    `yaml:"spinRate"`       // 飞行时绕竖直轴的角速度
	TumbleSpinRate float32    `yaml:"tumbleSpinRate"` // 被击中后绕 x 轴的角速度
	TumbleSpeed    float32    `yaml:"tumbleSpeed"`    // 被击中后沿 +y 后退的速度
	TimeOut        float32    `yaml:"timeOut"`        // 存活时长
	Radius         mgl32.Vec3 `yaml:"radius"`         // 碰撞盒半尺寸
}

// ProjectileConfig 番茄酱子弹配置
type ProjectileConfig struct {
	Speed           float32    `yaml:"speed"`           // 飞行速度（单位/秒）
	ExpireTime      float32    `yaml:"expireTime"`      // 最长飞行时间
	RestPosition    mgl32.Vec3 `yaml:"restPosition"`    // 未发射时的停放位置
	HitMarkerOffset mgl32.Vec3 `yaml:"hitMarkerOffset"` // 击中标记相对子弹位置的偏移
}

// DefaultGameplayConfig 返回默认玩法配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Health: HealthConfig{
			Initial:            20,
			AppleHitDamage:     3,
			HotdogEscapeDamage: 1,
		},
		Spawn: SpawnConfig{
			Hotdog: SpawnRule{InitialDelay: 3.0, Interval: 2.0, MaxActive: 10},
			Apple:  SpawnRule{InitialDelay: 0, Interval: 1.0, MaxActive: 3},
		},
		Hotdog: HotdogConfig{
			SpawnY:          9.0,
			Depth:           0.1,
			XRange:          Range{Min: -5, Max: 5},
			Speed:           1.5,
			Radius:          mgl32.Vec3{0.15, 0.45, 0.65},
			PathEpsilon:     0.01,
			FallDuration:    1.0,
			FallSpeed:       18.0, // 0.3 每帧 @60fps
			DeathStandstill: 0.5,
			DeathDuration:   1.0,
			DeathSpinRate:   -3.0,
			DeathSinkSpeed:  0.8,
		},
		Apple: AppleConfig{
			InitPos:        mgl32.Vec3{-6, 5, 0},
			InitVel:        mgl32.Vec3{8, 0, 1},
			LaneRange:      Range{Min: 0, Max: 10},
			VelocityJitter: Range{Min: -2, Max: 2},
			Gravity:        -1.0,
			SpinRate:       2.0,
			TumbleSpinRate: -9.0,
			TumbleSpeed:    10.0,
			TimeOut:        3.0,
			Radius:         mgl32.Vec3{0.35, 0.35, 0.35},
		},
		Projectile: ProjectileConfig{
			Speed:           20.0,
			ExpireTime:      1.5,
			RestPosition:    mgl32.Vec3{0, 0, 0},
			HitMarkerOffset: mgl32.Vec3{0, -0.1, 0},
		},
		OffscreenPosition: mgl32.Vec3{-20, 0, 0},
	}
}

// ParseGameplayConfig 从 YAML 数据解析玩法配置
//
// 解析以默认配置为基础，YAML 只需写出要覆盖的字段。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *GameplayConfig: 合并并校验后的配置
//   - error: 解析或校验失败时返回错误
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// LoadGameplayConfig 从磁盘加载玩法配置
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 初始生命值为正，伤害值非负
//   - 生成间隔、上限为正，初始延迟非负
//   - 速度、时长为正，随机范围 Min <= Max
//   - 死亡静止时长小于死亡总时长
//   - 碰撞盒半尺寸为正
func (c *GameplayConfig) Validate() error {
	if c.Health.Initial <= 0 {
		return fmt.Errorf("health.initial must be positive, got %d", c.Health.Initial)
	}
	if c.Health.AppleHitDamage < 0 || c.Health.HotdogEscapeDamage < 0 {
		return fmt.Errorf("health damage must not be negative")
	}

	for name, rule := range map[string]SpawnRule{"hotdog": c.Spawn.Hotdog, "apple": c.Spawn.Apple} {
		if rule.Interval <= 0 {
			return fmt.Errorf("spawn.%s.interval must be positive, got %.2f", name, rule.Interval)
		}
		if rule.InitialDelay < 0 {
			return fmt.Errorf("spawn.%s.initialDelay must not be negative, got %.2f", name, rule.InitialDelay)
		}
		if rule.MaxActive <= 0 {
			return fmt.Errorf("spawn.%s.maxActive must be positive, got %d", name, rule.MaxActive)
		}
	}

	if err := validateRange("hotdog.xRange", c.Hotdog.XRange); err != nil {
		return err
	}
	if err := validateRange("apple.laneRange", c.Apple.LaneRange); err != nil {
		return err
	}
	if err := validateRange("apple.velocityJitter", c.Apple.VelocityJitter); err != nil {
		return err
	}

	if c.Hotdog.Speed <= 0 {
		return fmt.Errorf("hotdog.speed must be positive, got %.2f", c.Hotdog.Speed)
	}
	if c.Hotdog.SpawnY <= 0 {
		return fmt.Errorf("hotdog.spawnY must be positive, got %.2f", c.Hotdog.SpawnY)
	}
	if c.Hotdog.PathEpsilon <= 0 {
		return fmt.Errorf("hotdog.pathEpsilon must be positive, got %.4f", c.Hotdog.PathEpsilon)
	}
	if c.Hotdog.FallDuration <= 0 {
		return fmt.Errorf("hotdog.fallDuration must be positive, got %.2f", c.Hotdog.FallDuration)
	}
	if c.Hotdog.DeathStandstill < 0 || c.Hotdog.DeathStandstill >= c.Hotdog.DeathDuration {
		return fmt.Errorf("hotdog.deathStandstill(%.2f) must be in [0, deathDuration(%.2f))",
			c.Hotdog.DeathStandstill, c.Hotdog.DeathDuration)
	}
	if c.Apple.TimeOut <= 0 {
		return fmt.Errorf("apple.timeOut must be positive, got %.2f", c.Apple.TimeOut)
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("projectile.speed must be positive, got %.2f", c.Projectile.Speed)
	}
	if c.Projectile.ExpireTime <= 0 {
		return fmt.Errorf("projectile.expireTime must be positive, got %.2f", c.Projectile.ExpireTime)
	}

	for name, r := range map[string]mgl32.Vec3{"hotdog.radius": c.Hotdog.Radius, "apple.radius": c.Apple.Radius} {
		if r.X() <= 0 || r.Y() <= 0 || r.Z() <= 0 {
			return fmt.Errorf("%s must be positive on all axes, got %v", name, r)
		}
	}

	return nil
}

func validateRange(name string, r Range) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s invalid: min(%.1f) > max(%.1f)", name, r.Min, r.Max)
	}
	return nil
}

// FirstThreshold 返回第一次生成所需的累计时间
func (r SpawnRule) FirstThreshold() float32 {
	if r.InitialDelay > 0 {
		return r.InitialDelay
	}
	return r.Interval
}
