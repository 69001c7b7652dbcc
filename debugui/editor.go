package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flycam/input"
)

var keySliceType = reflect.TypeFor[[]input.Key]()

// EditValue draws an editor for the value ptr points to and writes edits
// straight back through it. Numbers, bools, float arrays and nested structs
// are editable; anything else is shown read-only.
func EditValue(label string, ptr any) bool {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", label))
		return false
	}
	return editField(label, label, v.Elem())
}

func editField(name, id string, val reflect.Value) bool {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return false
	}

	if val.Type() == keySliceType {
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		return false
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt("##"+id, &v) && val.CanSet() {
			val.SetInt(int64(v))
			return true
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+id, &v) && val.CanSet() {
			val.SetFloat(float64(v))
			return true
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+"##"+id, &v) && val.CanSet() {
			val.SetBool(v)
			return true
		}

	case reflect.Array:
		if val.Type().Elem().Kind() != reflect.Float32 {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
			return false
		}
		changed := false
		imgui.Text(fmt.Sprintf("%s:", name))
		for i := 0; i < val.Len(); i++ {
			imgui.SameLine()
			imgui.SetNextItemWidth(80)
			elem := val.Index(i)
			v := float32(elem.Float())
			if imgui.InputFloat(fmt.Sprintf("##%s.%d", id, i), &v) && elem.CanSet() {
				elem.SetFloat(float64(v))
				changed = true
			}
		}
		return changed

	case reflect.Struct:
		changed := false
		if imgui.TreeNodeStr(name + "##" + id) {
			for _, f := range globalReflectionCache.GetFields(val.Type()) {
				if editField(f.Name, id+"."+f.Name, val.Field(f.Index)) {
					changed = true
				}
			}
			imgui.TreePop()
		}
		return changed

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
	return false
}
